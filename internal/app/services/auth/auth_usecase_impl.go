package auth

import (
	"context"
	"errors"
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/app/services/shared/sessions"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/dto/responses"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/instrumentation"
	"healthfirst-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	CredentialStore CredentialStore
	SessionStore    sessions.SessionStore
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	credentialStore CredentialStore,
	sessionStore sessions.SessionStore,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		CredentialStore: credentialStore,
		SessionStore:    sessionStore,
		InternalConfig:  internalConfig,
		Log:             log,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	ok, err := uc.CredentialStore.Verify(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		instrumentation.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, exceptions.ErrInvalidCredentials(errors.New("credential verification failed"))
	}

	userType := constvars.UserTypeProvider
	landing := constvars.ViewProviderDashboard
	if request.LoginAsPatient {
		userType = constvars.UserTypePatient
		landing = constvars.ViewPatientDashboard
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserType:  userType,
		UserEmail: request.Email,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.Session.TTLInHours) * time.Hour),
	}

	err = uc.SessionStore.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	tokenString, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	instrumentation.LoginAttemptsTotal.WithLabelValues("accepted").Inc()
	uc.Log.Info("session created",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserTypeKey, userType),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	return &responses.Login{
		Token:     tokenString,
		UserType:  userType,
		UserEmail: request.Email,
		Landing:   landing,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, token string) error {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		// Logout never fails client-side: a dead token already is logged out.
		return nil
	}
	return uc.SessionStore.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) IsAuthenticated(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionStore.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("session not found"))
	}
	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		_ = uc.SessionStore.DeleteSession(ctx, sessionID)
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("session expired"))
	}
	return session, nil
}

func (uc *authUsecase) HandleUnauthorized(ctx context.Context, sessionID string) error {
	instrumentation.ForcedLogoutsTotal.Inc()
	uc.Log.Warn("forcing logout after unauthorized downstream response",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.SessionStore.DeleteSession(ctx, sessionID)
}
