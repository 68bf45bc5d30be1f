package registration

import (
	"context"

	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	CreateWizard(ctx context.Context, kind string, request *requests.CreateWizard) (*responses.WizardCreated, error)
	GetWizard(ctx context.Context, wizardID string) (*responses.WizardSnapshot, error)
	SetField(ctx context.Context, wizardID, fieldName string, value interface{}) (*responses.WizardSnapshot, error)
	BlurField(ctx context.Context, wizardID, fieldName string) (*responses.WizardSnapshot, error)
	Next(ctx context.Context, wizardID string) (*responses.WizardSnapshot, error)
	Back(ctx context.Context, wizardID string) (*responses.WizardSnapshot, error)
	ToggleSection(ctx context.Context, wizardID, sectionName string, on bool) (*responses.WizardSnapshot, error)
	AppendItem(ctx context.Context, wizardID, fieldName, item string) (*responses.WizardSnapshot, error)
	RemoveItem(ctx context.Context, wizardID, fieldName, item string) (*responses.WizardSnapshot, error)
	Submit(ctx context.Context, wizardID string) (*responses.WizardSnapshot, error)
	DeleteWizard(ctx context.Context, wizardID string) error
	PasswordStrength(password string) *responses.PasswordStrength
}

// Submitter carries a finished wizard payload to whatever stores the record.
type Submitter interface {
	SubmitRegistration(ctx context.Context, kind, mode, recordID string, payload map[string]interface{}) error
}
