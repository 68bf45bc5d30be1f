package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/app/services/auth"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/dto/responses"
	"healthfirst-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthUsecase) IsAuthenticated(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockAuthUsecase) HandleUnauthorized(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newAuthTestRouter(mockAuthUsecase *MockAuthUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			LoginMaxAttemptsPerMinute: 100,
			LoginBlockTimeInMinutes:   1,
		},
	}

	authController := auth.NewAuthController(mockAuthUsecase, logger)

	router := chi.NewRouter()
	attachAuthRoutes(router, internalConfig, authController)
	return router
}

func TestAuthRouter_LoginSuccess(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).Return(&responses.Login{
		Token:     "signed-token",
		UserType:  constvars.UserTypeProvider,
		UserEmail: "demo@example.com",
		Landing:   constvars.ViewProviderDashboard,
	}, nil)

	router := newAuthTestRouter(mockAuthUsecase)

	body, _ := json.Marshal(requests.Login{Email: "demo@example.com", Password: "password123"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:50000"

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, constvars.ViewProviderDashboard, data["landing"])
	mockAuthUsecase.AssertExpectations(t)
}

func TestAuthRouter_LoginInvalidCredentials(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("Login", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrInvalidCredentials(nil))

	router := newAuthTestRouter(mockAuthUsecase)

	body, _ := json.Marshal(requests.Login{Email: "demo@example.com", Password: "wrongpassword"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.2:50000"

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constvars.ErrClientInvalidEmailOrPassword)
}

func TestAuthRouter_LoginValidationRejectsBadEmail(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	body, _ := json.Marshal(requests.Login{Email: "not-an-email", Password: "password123"})
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.3:50000"

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockAuthUsecase.AssertNotCalled(t, "Login")
}

func TestAuthRouter_LogoutRequiresToken(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	router := newAuthTestRouter(mockAuthUsecase)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.RemoteAddr = "10.0.0.4:50000"

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthRouter_LoginRateLimiterBlocks(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("Login", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrInvalidCredentials(nil))

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			LoginMaxAttemptsPerMinute: 2,
			LoginBlockTimeInMinutes:   5,
		},
	}
	authController := auth.NewAuthController(mockAuthUsecase, logger)
	router := chi.NewRouter()
	attachAuthRoutes(router, internalConfig, authController)

	body, _ := json.Marshal(requests.Login{Email: "demo@example.com", Password: "wrongpassword"})

	var lastCode int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.5:50000"
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		lastCode = recorder.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
