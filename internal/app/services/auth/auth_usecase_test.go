package auth

import (
	"context"
	"testing"
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/services/shared/sessions"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT:     config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		Session: config.Session{TTLInHours: 1},
	}
}

func newTestUsecase(t *testing.T) (AuthUsecase, sessions.SessionStore) {
	t.Helper()
	credentials, err := NewMemoryCredentialStore(true)
	assert.NoError(t, err)
	store := sessions.NewMemorySessionStore(time.Hour, time.Minute)
	return NewAuthUsecase(credentials, store, newTestConfig(), zap.NewNop()), store
}

func TestLogin_ValidCredentials(t *testing.T) {
	uc, _ := newTestUsecase(t)

	response, err := uc.Login(context.Background(), &requests.Login{
		Email:    "demo@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, constvars.UserTypeProvider, response.UserType)
	assert.Equal(t, constvars.ViewProviderDashboard, response.Landing)
}

func TestLogin_AsPatientLandsOnPatientDashboard(t *testing.T) {
	uc, _ := newTestUsecase(t)

	response, err := uc.Login(context.Background(), &requests.Login{
		Email:          "test@example.com",
		Password:       "Test123!",
		LoginAsPatient: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, constvars.UserTypePatient, response.UserType)
	assert.Equal(t, constvars.ViewPatientDashboard, response.Landing)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newTestUsecase(t)

	response, err := uc.Login(context.Background(), &requests.Login{
		Email:    "demo@example.com",
		Password: "not-the-password",
	})
	assert.Nil(t, response)
	assert.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
}

func TestLogin_UnknownEmailGetsSameMessage(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Login(context.Background(), &requests.Login{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
}

func TestIsAuthenticated_RoundTrip(t *testing.T) {
	uc, _ := newTestUsecase(t)

	response, err := uc.Login(context.Background(), &requests.Login{
		Email:    "provider@test.com",
		Password: "Provider123!",
	})
	assert.NoError(t, err)

	session, err := uc.IsAuthenticated(context.Background(), response.Token)
	assert.NoError(t, err)
	assert.Equal(t, "provider@test.com", session.UserEmail)
	assert.Equal(t, constvars.UserTypeProvider, session.UserType)
}

func TestIsAuthenticated_GarbageToken(t *testing.T) {
	uc, _ := newTestUsecase(t)

	session, err := uc.IsAuthenticated(context.Background(), "not-a-jwt")
	assert.Nil(t, session)
	assert.Error(t, err)
	assert.True(t, exceptions.IsUnauthorized(err))
}

func TestLogout_InvalidatesSession(t *testing.T) {
	uc, _ := newTestUsecase(t)

	response, err := uc.Login(context.Background(), &requests.Login{
		Email:    "doctor@health.com",
		Password: "Doctor123!",
	})
	assert.NoError(t, err)

	assert.NoError(t, uc.Logout(context.Background(), response.Token))

	_, err = uc.IsAuthenticated(context.Background(), response.Token)
	assert.True(t, exceptions.IsUnauthorized(err))
}

func TestLogout_DeadTokenIsIdempotent(t *testing.T) {
	uc, _ := newTestUsecase(t)

	assert.NoError(t, uc.Logout(context.Background(), "expired-or-garbage"))
}

func TestHandleUnauthorized_ClearsSession(t *testing.T) {
	uc, store := newTestUsecase(t)

	response, err := uc.Login(context.Background(), &requests.Login{
		Email:    "admin@matthevii.com",
		Password: "Admin123!",
	})
	assert.NoError(t, err)

	session, err := uc.IsAuthenticated(context.Background(), response.Token)
	assert.NoError(t, err)

	assert.NoError(t, uc.HandleUnauthorized(context.Background(), session.SessionID))

	got, err := store.GetSession(context.Background(), session.SessionID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
