package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/services/patients"
	"healthfirst-service/internal/app/services/providers"
	"healthfirst-service/internal/app/services/registration"
	"healthfirst-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newRegistrationTestRouter(t *testing.T) (*chi.Mux, providers.ProviderUsecase) {
	t.Helper()
	logger := zap.NewNop()
	directory := config.Directory{SimulateLatency: false, SeedDemoRecords: true}

	providerUsecase := providers.NewProviderUsecase(providers.NewProviderMemoryRepository(directory), logger)
	patientUsecase := patients.NewPatientUsecase(patients.NewPatientMemoryRepository(directory), logger)

	submitter := registration.NewDirectorySubmitter(providerUsecase, patientUsecase, nil, logger)
	registrationUsecase := registration.NewRegistrationUsecase(registration.NewMemoryWizardStore(time.Hour), submitter, logger)
	registrationController := registration.NewRegistrationController(registrationUsecase, logger)

	router := chi.NewRouter()
	router.Route("/registrations", func(r chi.Router) {
		attachRegistrationRoutes(r, registrationController)
	})
	return router, providerUsecase
}

func doJSON(t *testing.T, router *chi.Mux, method, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeSnapshot(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response responses.ResponseDTO
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	data, ok := response.Data.(map[string]interface{})
	assert.True(t, ok, "expected object payload, got: %s", recorder.Body.String())
	return data
}

func TestRegistrationRouter_ProviderHappyPath(t *testing.T) {
	router, providerUsecase := newRegistrationTestRouter(t)

	created := doJSON(t, router, "POST", "/registrations/provider", nil)
	assert.Equal(t, http.StatusCreated, created.Code)
	wizardID := decodeSnapshot(t, created)["wizard_id"].(string)

	fields := map[string]interface{}{
		"first_name":          "Jane",
		"last_name":           "Doe",
		"email":               "jane.doe@example.com",
		"phone_number":        "+15551234567",
		"password":            "Secret123!",
		"confirm_password":    "Secret123!",
		"specialization":      "Clinical Psychology",
		"license_number":      "LIC12345",
		"years_of_experience": 10,
		"street":              "123 Main St",
		"city":                "Springfield",
		"state":               "IL",
		"zip":                 "62704",
	}
	for name, value := range fields {
		recorder := doJSON(t, router, "PATCH",
			fmt.Sprintf("/registrations/wizards/%s/fields/%s", wizardID, name),
			map[string]interface{}{"value": value})
		assert.Equal(t, http.StatusOK, recorder.Code, name)
	}

	// Walk through all four steps.
	for i := 0; i < 3; i++ {
		recorder := doJSON(t, router, "POST", fmt.Sprintf("/registrations/wizards/%s/next", wizardID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	submitted := doJSON(t, router, "POST", fmt.Sprintf("/registrations/wizards/%s/submit", wizardID), nil)
	assert.Equal(t, http.StatusOK, submitted.Code)

	// The record is in the directory now.
	results, err := providerUsecase.GetProviders(httptest.NewRequest("GET", "/", nil).Context(), "Jane")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "jane.doe@example.com", results[0].Email)

	// A submitted wizard is gone.
	gone := doJSON(t, router, "GET", "/registrations/wizards/"+wizardID, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestRegistrationRouter_NextBlockedOnEmptyStep(t *testing.T) {
	router, _ := newRegistrationTestRouter(t)

	created := doJSON(t, router, "POST", "/registrations/provider", nil)
	wizardID := decodeSnapshot(t, created)["wizard_id"].(string)

	recorder := doJSON(t, router, "POST", fmt.Sprintf("/registrations/wizards/%s/next", wizardID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	// Errors stay visible on the wizard state.
	state := doJSON(t, router, "GET", "/registrations/wizards/"+wizardID, nil)
	snapshot := decodeSnapshot(t, state)
	fieldErrors := snapshot["errors"].(map[string]interface{})
	assert.Equal(t, "First name is required", fieldErrors["first_name"])
}

func TestRegistrationRouter_SubmitValidationNamesOffendingFields(t *testing.T) {
	router, _ := newRegistrationTestRouter(t)

	created := doJSON(t, router, "POST", "/registrations/provider", nil)
	wizardID := decodeSnapshot(t, created)["wizard_id"].(string)

	fields := map[string]interface{}{
		"first_name":          "Jane",
		"last_name":           "Doe",
		"email":               "jane.doe@example.com",
		"phone_number":        "+15551234567",
		"password":            "Secret123!",
		"confirm_password":    "Different123!",
		"specialization":      "Clinical Psychology",
		"license_number":      "LIC12345",
		"years_of_experience": 10,
		"street":              "123 Main St",
		"city":                "Springfield",
		"state":               "IL",
		"zip":                 "62704",
	}
	for name, value := range fields {
		doJSON(t, router, "PATCH",
			fmt.Sprintf("/registrations/wizards/%s/fields/%s", wizardID, name),
			map[string]interface{}{"value": value})
	}

	submitted := doJSON(t, router, "POST", fmt.Sprintf("/registrations/wizards/%s/submit", wizardID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, submitted.Code)
	assert.Contains(t, submitted.Body.String(), "Passwords must match")
	// The 422 body names the fields that failed, not just the first message.
	assert.Contains(t, submitted.Body.String(), `"fields":["confirm_password"]`)
}

func TestRegistrationRouter_UnknownKind(t *testing.T) {
	router, _ := newRegistrationTestRouter(t)

	recorder := doJSON(t, router, "POST", "/registrations/unicorn", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRegistrationRouter_UnknownWizard(t *testing.T) {
	router, _ := newRegistrationTestRouter(t)

	recorder := doJSON(t, router, "GET", "/registrations/wizards/nope", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRegistrationRouter_PatientSectionsAndItems(t *testing.T) {
	router, _ := newRegistrationTestRouter(t)

	created := doJSON(t, router, "POST", "/registrations/patient", nil)
	wizardID := decodeSnapshot(t, created)["wizard_id"].(string)

	toggled := doJSON(t, router, "PUT",
		fmt.Sprintf("/registrations/wizards/%s/sections/medical_history", wizardID),
		map[string]interface{}{"on": true})
	assert.Equal(t, http.StatusOK, toggled.Code)

	appended := doJSON(t, router, "POST",
		fmt.Sprintf("/registrations/wizards/%s/items/medical_history", wizardID),
		map[string]interface{}{"item": "Asthma"})
	assert.Equal(t, http.StatusOK, appended.Code)

	snapshot := decodeSnapshot(t, appended)
	values := snapshot["values"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Asthma"}, values["medical_history"])
}

func TestRegistrationRouter_PasswordStrength(t *testing.T) {
	router, _ := newRegistrationTestRouter(t)

	recorder := doJSON(t, router, "POST", "/registrations/password-strength",
		map[string]interface{}{"password": "Abcdefg1!"})
	assert.Equal(t, http.StatusOK, recorder.Code)

	data := decodeSnapshot(t, recorder)
	assert.Equal(t, float64(5), data["score"])
	assert.Equal(t, "Very Strong", data["label"])
}
