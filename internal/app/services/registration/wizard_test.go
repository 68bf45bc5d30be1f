package registration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func validProviderValues() map[string]interface{} {
	return map[string]interface{}{
		"first_name":          "Jane",
		"last_name":           "Doe",
		"email":               "jane.doe@example.com",
		"phone_number":        "+15551234567",
		"password":            "Secret123!",
		"confirm_password":    "Secret123!",
		"specialization":      "Clinical Psychology",
		"license_number":      "LIC12345",
		"years_of_experience": float64(10),
		"street":              "123 Main St",
		"city":                "Springfield",
		"state":               "IL",
		"zip":                 "62704",
	}
}

func fillWizard(t *testing.T, w *Wizard, values map[string]interface{}) {
	t.Helper()
	for name, value := range values {
		assert.NoError(t, w.SetField(name, value))
	}
}

func TestWizard_SetFieldDoesNotValidateBeforeBlur(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	assert.NoError(t, w.SetField("email", "not-an-email"))
	snapshot := w.Snapshot()
	assert.Empty(t, snapshot.Errors["email"])
}

func TestWizard_BlurValidatesAndChangeRevalidates(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	assert.NoError(t, w.SetField("email", "not-an-email"))
	assert.NoError(t, w.Blur("email"))
	assert.Equal(t, "Please enter a valid email address", w.Snapshot().Errors["email"])

	// After first blur the field validates on every change.
	assert.NoError(t, w.SetField("email", "jane@example.com"))
	assert.Empty(t, w.Snapshot().Errors["email"])

	assert.NoError(t, w.SetField("email", "broken-again"))
	assert.Equal(t, "Please enter a valid email address", w.Snapshot().Errors["email"])
}

func TestWizard_FirstFailingRuleWins(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	assert.NoError(t, w.Blur("first_name"))
	assert.Equal(t, "First name is required", w.Snapshot().Errors["first_name"])

	assert.NoError(t, w.SetField("first_name", "J"))
	assert.Equal(t, "First name must be at least 2 characters", w.Snapshot().Errors["first_name"])
}

func TestWizard_UnknownFieldRejected(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	err := w.SetField("no_such_field", "value")
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestWizard_NextBlockedOnInvalidStep(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	err := w.Next()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)

	snapshot := w.Snapshot()
	assert.Equal(t, 0, snapshot.CurrentStep)
	// Failed validation leaves the step's errors recorded.
	assert.Equal(t, "First name is required", snapshot.Errors["first_name"])
}

func TestWizard_NextAdvancesAndCapsAtLastStep(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")
	fillWizard(t, w, validProviderValues())

	for i := 0; i < 10; i++ {
		assert.NoError(t, w.Next())
	}
	snapshot := w.Snapshot()
	assert.Equal(t, len(snapshot.Steps)-1, snapshot.CurrentStep)
}

func TestWizard_BackFlooredAtZeroAndNeverValidates(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	w.Back()
	w.Back()
	snapshot := w.Snapshot()
	assert.Equal(t, 0, snapshot.CurrentStep)
	assert.Empty(t, snapshot.Errors)
}

func TestWizard_EditModeDropsSecurityStep(t *testing.T) {
	create := NewWizard("w1", ProviderSchema(), nil, "")
	edit := NewWizard("w2", ProviderSchema(), map[string]interface{}{
		"first_name": "Jane",
	}, "record-1")

	assert.Equal(t, ModeCreate, create.Snapshot().Mode)
	assert.Equal(t, ModeEdit, edit.Snapshot().Mode)
	assert.Len(t, create.Snapshot().Steps, 4)
	assert.Len(t, edit.Snapshot().Steps, 3)
	for _, step := range edit.Snapshot().Steps {
		assert.NotEqual(t, "Security", step.Label)
	}
}

func TestWizard_ToggleSectionControlsValidation(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), nil, "")

	// Inactive section fields never validate.
	assert.NoError(t, w.SetField("emergency_contact_phone", "###"))
	assert.NoError(t, w.Blur("emergency_contact_phone"))
	assert.Empty(t, w.Snapshot().Errors["emergency_contact_phone"])

	assert.NoError(t, w.ToggleSection(constvars.SectionEmergencyContact, true))
	assert.NoError(t, w.Blur("emergency_contact_phone"))
	assert.Equal(t, "Please enter a valid phone number", w.Snapshot().Errors["emergency_contact_phone"])

	// Toggling off clears the section's errors but keeps its values.
	assert.NoError(t, w.ToggleSection(constvars.SectionEmergencyContact, false))
	snapshot := w.Snapshot()
	assert.Empty(t, snapshot.Errors["emergency_contact_phone"])
	assert.Equal(t, "###", snapshot.Values["emergency_contact_phone"])
}

func TestWizard_UnknownSectionRejected(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), nil, "")
	assert.Error(t, w.ToggleSection("no_such_section", true))
}

func TestWizard_ListItemsTrimAndDedupe(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), nil, "")
	assert.NoError(t, w.ToggleSection(constvars.SectionMedicalHistory, true))

	assert.NoError(t, w.AppendListItem("medical_history", "  Asthma "))
	assert.NoError(t, w.AppendListItem("medical_history", "Asthma"))
	assert.NoError(t, w.AppendListItem("medical_history", "   "))
	assert.NoError(t, w.AppendListItem("medical_history", "Diabetes"))

	assert.Equal(t, []string{"Asthma", "Diabetes"}, w.Snapshot().Values["medical_history"])

	assert.NoError(t, w.RemoveListItem("medical_history", "Asthma"))
	assert.Equal(t, []string{"Diabetes"}, w.Snapshot().Values["medical_history"])
}

func TestWizard_AppendToNonListFieldRejected(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), nil, "")
	assert.Error(t, w.AppendListItem("first_name", "oops"))
}

func TestWizard_SubmitValidatesAllActiveFields(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")

	err := w.Submit(context.Background(), func(context.Context, map[string]interface{}) error {
		t.Fatal("submit collaborator must not run when validation fails")
		return nil
	})
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Contains(t, customErr.Fields, "first_name")
	assert.Contains(t, customErr.Fields, "zip")
}

func TestWizard_SubmitPasswordMismatchNamesFieldAndSkipsPersistence(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")
	values := validProviderValues()
	values["confirm_password"] = "Different123!"
	fillWizard(t, w, values)

	err := w.Submit(context.Background(), func(context.Context, map[string]interface{}) error {
		t.Fatal("submit collaborator must not run on a password mismatch")
		return nil
	})
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Equal(t, "Passwords must match", customErr.ClientMessage)
	assert.Equal(t, []string{"confirm_password"}, customErr.Fields)
}

func TestWizard_EditModeNeverCollectsOrValidatesPassword(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), map[string]interface{}{
		"first_name":    "Cameron",
		"last_name":     "Williamson",
		"email":         "cameron@example.com",
		"phone_number":  "(555) 123-4567",
		"date_of_birth": "1990-06-15",
		"gender":        "female",
		"street":        "1 Elm St",
		"city":          "Springfield",
		"state":         "IL",
		"zip":           "62704",
	}, "record-1")

	// Password fields are gone from the form entirely.
	for _, step := range w.Snapshot().Steps {
		assert.NotContains(t, step.Fields, "password")
		assert.NotContains(t, step.Fields, "confirm_password")
	}

	// Blurring one never records an error either.
	assert.NoError(t, w.Blur("password"))
	assert.Empty(t, w.Snapshot().Errors["password"])

	var payload map[string]interface{}
	err := w.Submit(context.Background(), func(_ context.Context, p map[string]interface{}) error {
		payload = p
		return nil
	})
	assert.NoError(t, err)
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "confirm_password")
	assert.Equal(t, "Cameron", payload["first_name"])
}

func TestWizard_SubmitPayloadExcludesConfirmPasswordAndInactiveSections(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), nil, "")
	fillWizard(t, w, map[string]interface{}{
		"first_name":       "Pat",
		"last_name":        "Smith",
		"email":            "pat@example.com",
		"phone_number":     "(555) 123-4567",
		"password":         "Password1",
		"confirm_password": "Password1",
		"date_of_birth":    "1990-06-15",
		"gender":           "other",
		"street":           "1 Elm St",
		"city":             "Springfield",
		"state":            "IL",
		"zip":              "62704",
		// Entered but the insurance section stays off.
		"insurance_provider": "Acme Health",
	})

	var payload map[string]interface{}
	err := w.Submit(context.Background(), func(_ context.Context, p map[string]interface{}) error {
		payload = p
		return nil
	})
	assert.NoError(t, err)
	assert.NotContains(t, payload, "confirm_password")
	assert.NotContains(t, payload, "insurance_provider")
	assert.Equal(t, "Pat", payload["first_name"])
	assert.Equal(t, "Password1", payload["password"])
}

func TestWizard_SubmitFailureRecordsSubmitError(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")
	fillWizard(t, w, validProviderValues())

	err := w.Submit(context.Background(), func(context.Context, map[string]interface{}) error {
		return exceptions.ErrStoreUnreachable(errors.New("connection refused"))
	})
	assert.Error(t, err)

	snapshot := w.Snapshot()
	assert.False(t, snapshot.IsSubmitting)
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, snapshot.SubmitError)
}

func TestWizard_ConcurrentSubmitRejected(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")
	fillWizard(t, w, validProviderValues())

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = w.Submit(context.Background(), func(context.Context, map[string]interface{}) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := w.Submit(context.Background(), func(context.Context, map[string]interface{}) error {
		return nil
	})
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

	close(release)
	wg.Wait()
}

func TestWizard_ResetDropsLateSubmitResult(t *testing.T) {
	w := NewWizard("w1", ProviderSchema(), nil, "")
	fillWizard(t, w, validProviderValues())

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = w.Submit(context.Background(), func(context.Context, map[string]interface{}) error {
			close(started)
			<-release
			return errors.New("late failure")
		})
	}()

	<-started
	w.Reset()
	close(release)
	wg.Wait()

	// The late failure must not resurface on the pristine wizard.
	time.Sleep(10 * time.Millisecond)
	snapshot := w.Snapshot()
	assert.Empty(t, snapshot.SubmitError)
	assert.Empty(t, snapshot.Values)
	assert.Equal(t, 0, snapshot.CurrentStep)
}

func TestWizard_ResetRestoresPristineState(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), nil, "")
	assert.NoError(t, w.SetField("first_name", "Pat"))
	assert.NoError(t, w.Blur("email"))
	assert.NoError(t, w.ToggleSection(constvars.SectionInsurance, true))

	w.Reset()

	snapshot := w.Snapshot()
	assert.Empty(t, snapshot.Values)
	assert.Empty(t, snapshot.Errors)
	assert.False(t, snapshot.SectionToggles[constvars.SectionInsurance])
}

func TestWizard_EditModePrefillsAndActivatesSections(t *testing.T) {
	w := NewWizard("w1", PatientSchema(), map[string]interface{}{
		"first_name":         "Pat",
		"insurance_provider": "Acme Health",
	}, "record-6")

	snapshot := w.Snapshot()
	assert.Equal(t, ModeEdit, snapshot.Mode)
	assert.Equal(t, "Pat", snapshot.Values["first_name"])
	assert.True(t, snapshot.SectionToggles[constvars.SectionInsurance])
	assert.False(t, snapshot.SectionToggles[constvars.SectionEmergencyContact])
}
