package registration

import (
	"context"
	"errors"

	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/dto/responses"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/instrumentation"
	"healthfirst-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type registrationUsecase struct {
	WizardStore WizardStore
	Submitter   Submitter
	Log         *zap.Logger
}

func NewRegistrationUsecase(wizardStore WizardStore, submitter Submitter, log *zap.Logger) RegistrationUsecase {
	return &registrationUsecase{
		WizardStore: wizardStore,
		Submitter:   submitter,
		Log:         log,
	}
}

func (uc *registrationUsecase) CreateWizard(_ context.Context, kind string, request *requests.CreateWizard) (*responses.WizardCreated, error) {
	schema, ok := SchemaFor(kind)
	if !ok {
		return nil, exceptions.ErrWizardUnknownKind(errors.New("unknown registration kind: " + kind))
	}

	wizard := NewWizard(utils.GenerateWizardID(), schema, request.InitialValues, request.RecordID)
	uc.WizardStore.Put(wizard)

	snapshot := wizard.Snapshot()
	instrumentation.WizardsCreatedTotal.WithLabelValues(kind, snapshot.Mode).Inc()
	uc.Log.Info("wizard created",
		zap.String(constvars.LoggingWizardIDKey, wizard.ID()),
		zap.String("kind", kind),
		zap.String("mode", snapshot.Mode),
	)

	return &responses.WizardCreated{WizardID: wizard.ID(), Snapshot: *snapshot}, nil
}

func (uc *registrationUsecase) wizard(wizardID string) (*Wizard, error) {
	wizard, ok := uc.WizardStore.Get(wizardID)
	if !ok {
		return nil, exceptions.ErrWizardNotFound(errors.New("wizard not found: " + wizardID))
	}
	return wizard, nil
}

func (uc *registrationUsecase) GetWizard(_ context.Context, wizardID string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) SetField(_ context.Context, wizardID, fieldName string, value interface{}) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	if err := wizard.SetField(fieldName, value); err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) BlurField(_ context.Context, wizardID, fieldName string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	if err := wizard.Blur(fieldName); err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) Next(_ context.Context, wizardID string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	if err := wizard.Next(); err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) Back(_ context.Context, wizardID string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	wizard.Back()
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) ToggleSection(_ context.Context, wizardID, sectionName string, on bool) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	if err := wizard.ToggleSection(sectionName, on); err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) AppendItem(_ context.Context, wizardID, fieldName, item string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	if err := wizard.AppendListItem(fieldName, item); err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) RemoveItem(_ context.Context, wizardID, fieldName, item string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	if err := wizard.RemoveListItem(fieldName, item); err != nil {
		return nil, err
	}
	return wizard.Snapshot(), nil
}

func (uc *registrationUsecase) Submit(ctx context.Context, wizardID string) (*responses.WizardSnapshot, error) {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return nil, err
	}
	snapshot := wizard.Snapshot()

	err = wizard.Submit(ctx, func(ctx context.Context, payload map[string]interface{}) error {
		return uc.Submitter.SubmitRegistration(ctx, snapshot.Kind, snapshot.Mode, wizard.recordID, payload)
	})
	if err != nil {
		instrumentation.WizardSubmissionsTotal.WithLabelValues(snapshot.Kind, "failed").Inc()
		return nil, err
	}

	final := wizard.Snapshot()
	// A finished wizard is gone; a new registration starts fresh.
	uc.WizardStore.Delete(wizardID)
	instrumentation.WizardSubmissionsTotal.WithLabelValues(snapshot.Kind, "succeeded").Inc()
	uc.Log.Info("wizard submitted",
		zap.String(constvars.LoggingWizardIDKey, wizardID),
		zap.String("kind", snapshot.Kind),
		zap.String("mode", snapshot.Mode),
	)
	return final, nil
}

func (uc *registrationUsecase) DeleteWizard(_ context.Context, wizardID string) error {
	wizard, err := uc.wizard(wizardID)
	if err != nil {
		return err
	}
	// Reset first so an in-flight submit result gets dropped.
	wizard.Reset()
	uc.WizardStore.Delete(wizardID)
	return nil
}

func (uc *registrationUsecase) PasswordStrength(password string) *responses.PasswordStrength {
	score, label := PasswordStrength(password)
	return &responses.PasswordStrength{Score: score, Label: label}
}
