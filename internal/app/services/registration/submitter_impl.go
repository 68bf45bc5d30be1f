package registration

import (
	"context"
	"errors"

	"healthfirst-service/internal/app/services/patients"
	"healthfirst-service/internal/app/services/providers"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// CredentialRegistrar lets a finished registration become a login-able
// account.
type CredentialRegistrar interface {
	Register(email, password string) error
}

type directorySubmitter struct {
	ProviderUsecase providers.ProviderUsecase
	PatientUsecase  patients.PatientUsecase
	Credentials     CredentialRegistrar
	Log             *zap.Logger
}

func NewDirectorySubmitter(
	providerUsecase providers.ProviderUsecase,
	patientUsecase patients.PatientUsecase,
	credentials CredentialRegistrar,
	log *zap.Logger,
) Submitter {
	return &directorySubmitter{
		ProviderUsecase: providerUsecase,
		PatientUsecase:  patientUsecase,
		Credentials:     credentials,
		Log:             log,
	}
}

func (s *directorySubmitter) SubmitRegistration(ctx context.Context, kind, mode, recordID string, payload map[string]interface{}) error {
	switch {
	case kind == constvars.RecordKindProvider && mode == ModeEdit:
		_, err := s.ProviderUsecase.UpdateProvider(ctx, recordID, payload)
		return rewrap(err, constvars.ErrClientUpdateProvider)

	case kind == constvars.RecordKindProvider:
		_, err := s.ProviderUsecase.CreateProvider(ctx, payload)
		if err != nil {
			return rewrap(err, constvars.ErrClientRegisterProvider)
		}
		s.registerCredential(payload)
		return nil

	case kind == constvars.RecordKindPatient && mode == ModeEdit:
		_, err := s.PatientUsecase.UpdatePatient(ctx, recordID, payload)
		return rewrap(err, constvars.ErrClientUpdatePatient)

	case kind == constvars.RecordKindPatient:
		_, err := s.PatientUsecase.CreatePatient(ctx, payload)
		if err != nil {
			return rewrap(err, constvars.ErrClientRegisterPatient)
		}
		s.registerCredential(payload)
		return nil

	default:
		return exceptions.ErrWizardUnknownKind(errors.New("unknown registration kind: " + kind))
	}
}

func (s *directorySubmitter) registerCredential(payload map[string]interface{}) {
	if s.Credentials == nil {
		return
	}
	email, _ := payload["email"].(string)
	password, _ := payload["password"].(string)
	if email == "" || password == "" {
		return
	}
	// The record is already stored; a credential failure must not fail the
	// registration, but the account cannot log in until it is resolved.
	if err := s.Credentials.Register(email, password); err != nil {
		s.Log.Error("failed to register credentials for new account",
			zap.String(constvars.LoggingEmailKey, email),
			zap.Error(err),
		)
	}
}

// rewrap swaps in the registration-specific client message while keeping the
// underlying status code and dev details.
func rewrap(err error, clientMessage string) error {
	if err == nil {
		return nil
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		rewrapped := *customErr
		rewrapped.ClientMessage = clientMessage
		return &rewrapped
	}
	return exceptions.BuildNewCustomError(err, constvars.StatusInternalServerError, clientMessage, constvars.ErrDevWizardPersistenceFailed)
}
