package registration

import (
	"context"
	"errors"
	"strings"
	"sync"

	"healthfirst-service/internal/pkg/dto/responses"
	"healthfirst-service/internal/pkg/exceptions"

	"github.com/samber/lo"
)

const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// Wizard is one live multi-step registration form. All state transitions are
// serialized behind its mutex; the mutex is released while a submit is in
// flight so reads stay possible.
type Wizard struct {
	mu          sync.Mutex
	id          string
	schema      *Schema
	mode        string
	recordID    string
	steps       []Step
	currentStep int
	values      map[string]interface{}
	touched     map[string]bool
	fieldErrors map[string]string
	toggles     map[string]bool
	submitting  bool
	submitErr   string
	// generation invalidates in-flight submits when the wizard is reset.
	generation int
}

func NewWizard(id string, schema *Schema, initialValues map[string]interface{}, recordID string) *Wizard {
	mode := ModeCreate
	if len(initialValues) > 0 {
		mode = ModeEdit
	}

	w := &Wizard{
		id:          id,
		schema:      schema,
		mode:        mode,
		recordID:    recordID,
		steps:       schema.StepsFor(mode),
		values:      make(map[string]interface{}),
		touched:     make(map[string]bool),
		fieldErrors: make(map[string]string),
		toggles:     make(map[string]bool),
	}
	for _, section := range schema.Sections {
		w.toggles[section] = false
	}
	for name, value := range initialValues {
		field, ok := schema.Field(name)
		if !ok {
			continue
		}
		w.values[name] = value
		// A pre-filled optional section starts visible.
		if field.Section != "" && !isEmpty(value) {
			w.toggles[field.Section] = true
		}
	}
	return w
}

func (w *Wizard) ID() string { return w.id }

// fieldActive reports whether the field participates in validation given the
// wizard mode and the current section toggles. An edit wizard never collects
// or validates a password.
func (w *Wizard) fieldActive(field Field) bool {
	if field.CreateOnly && w.mode == ModeEdit {
		return false
	}
	if field.Section == "" {
		return true
	}
	return w.toggles[field.Section]
}

func (w *Wizard) validateField(name string) {
	field, ok := w.schema.Field(name)
	if !ok || !w.fieldActive(field) {
		return
	}
	for _, rule := range field.Rules {
		if message := rule(w.values[name], w.values); message != "" {
			w.fieldErrors[name] = message
			return
		}
	}
	delete(w.fieldErrors, name)
}

// stepValid runs a step's active fields through their rules without touching
// recorded errors.
func (w *Wizard) stepValid(step Step) bool {
	for _, name := range step.Fields {
		field, ok := w.schema.Field(name)
		if !ok || !w.fieldActive(field) {
			continue
		}
		for _, rule := range field.Rules {
			if rule(w.values[name], w.values) != "" {
				return false
			}
		}
	}
	return true
}

func (w *Wizard) SetField(name string, value interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.schema.Field(name); !ok {
		return exceptions.ErrWizardUnknownField(errors.New("unknown field: " + name))
	}
	w.values[name] = value
	// Re-validate on change only after the field was first blurred, so the
	// user is not shouted at while still typing.
	if w.touched[name] {
		w.validateField(name)
	}
	return nil
}

func (w *Wizard) Blur(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.schema.Field(name); !ok {
		return exceptions.ErrWizardUnknownField(errors.New("unknown field: " + name))
	}
	w.touched[name] = true
	w.validateField(name)
	return nil
}

// Next validates the current step and advances when it passes. Field errors
// from a failed validation stay recorded on the wizard.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	step := w.steps[w.currentStep]
	for _, name := range step.Fields {
		w.touched[name] = true
		w.validateField(name)
	}
	if !w.stepValid(step) {
		return exceptions.ErrWizardStepInvalid(errors.New("step invalid: " + step.Label))
	}
	if w.currentStep < len(w.steps)-1 {
		w.currentStep++
	}
	return nil
}

// Back never validates and stops at the first step.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentStep > 0 {
		w.currentStep--
	}
}

// ToggleSection shows or hides an optional section. Hiding keeps the values
// already entered but takes the section's fields out of validation.
func (w *Wizard) ToggleSection(name string, on bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.schema.HasSection(name) {
		return exceptions.ErrWizardUnknownSection(errors.New("unknown section: " + name))
	}
	w.toggles[name] = on
	if !on {
		for fieldName, field := range w.schema.Fields {
			if field.Section == name {
				delete(w.fieldErrors, fieldName)
			}
		}
	}
	return nil
}

// AppendListItem adds a trimmed item to a list field, ignoring blanks and
// duplicates.
func (w *Wizard) AppendListItem(name, item string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	field, ok := w.schema.Field(name)
	if !ok || !field.List {
		return exceptions.ErrWizardUnknownField(errors.New("not a list field: " + name))
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return nil
	}
	items := w.listValues(name)
	if lo.Contains(items, item) {
		return nil
	}
	w.values[name] = append(items, item)
	return nil
}

func (w *Wizard) RemoveListItem(name, item string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	field, ok := w.schema.Field(name)
	if !ok || !field.List {
		return exceptions.ErrWizardUnknownField(errors.New("not a list field: " + name))
	}
	w.values[name] = lo.Filter(w.listValues(name), func(existing string, _ int) bool {
		return existing != item
	})
	return nil
}

func (w *Wizard) listValues(name string) []string {
	switch v := w.values[name].(type) {
	case []string:
		return v
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, asString(item))
		}
		return items
	default:
		return nil
	}
}

// Submit validates every active field and hands the cleaned values to submit.
// At most one submit runs at a time; a result arriving after the wizard was
// reset is dropped.
func (w *Wizard) Submit(ctx context.Context, submit func(ctx context.Context, payload map[string]interface{}) error) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return exceptions.ErrWizardSubmitInFlight(errors.New("submit already in flight"))
	}

	var firstError string
	var failedFields []string
	for _, step := range w.steps {
		for _, name := range step.Fields {
			w.touched[name] = true
			w.validateField(name)
			if message, found := w.fieldErrors[name]; found {
				if firstError == "" {
					firstError = message
				}
				failedFields = append(failedFields, name)
			}
		}
	}
	if firstError != "" {
		w.mu.Unlock()
		return exceptions.ErrWizardValidationFailed(errors.New(firstError), failedFields)
	}

	w.submitting = true
	w.submitErr = ""
	generation := w.generation
	payload := w.buildPayload()
	w.mu.Unlock()

	err := submit(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != generation {
		// Wizard was reset while the submit was in flight.
		return nil
	}
	w.submitting = false
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			w.submitErr = customErr.ClientMessage
		} else {
			w.submitErr = err.Error()
		}
		return err
	}
	return nil
}

// Reset wipes all form state back to a pristine wizard and invalidates any
// submit still in flight.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.currentStep = 0
	w.values = make(map[string]interface{})
	w.touched = make(map[string]bool)
	w.fieldErrors = make(map[string]string)
	w.submitting = false
	w.submitErr = ""
	for _, section := range w.schema.Sections {
		w.toggles[section] = false
	}
}

// buildPayload collects the values that make up the submitted record:
// active-section fields only, without the password confirmation. Callers must
// hold the mutex.
func (w *Wizard) buildPayload() map[string]interface{} {
	payload := make(map[string]interface{})
	for _, step := range w.steps {
		for _, name := range step.Fields {
			if name == "confirm_password" {
				continue
			}
			field, _ := w.schema.Field(name)
			if !w.fieldActive(field) {
				continue
			}
			if value, found := w.values[name]; found {
				payload[name] = value
			}
		}
	}
	return payload
}

func (w *Wizard) Snapshot() *responses.WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	steps := make([]responses.WizardStep, 0, len(w.steps))
	for _, step := range w.steps {
		steps = append(steps, responses.WizardStep{
			Label:    step.Label,
			Icon:     step.Icon,
			Fields:   append([]string(nil), step.Fields...),
			Complete: w.stepValid(step),
		})
	}

	values := make(map[string]interface{}, len(w.values))
	for name, value := range w.values {
		values[name] = value
	}
	fieldErrors := make(map[string]string, len(w.fieldErrors))
	for name, message := range w.fieldErrors {
		fieldErrors[name] = message
	}
	var toggles map[string]bool
	if len(w.schema.Sections) > 0 {
		toggles = make(map[string]bool, len(w.toggles))
		for name, on := range w.toggles {
			toggles[name] = on
		}
	}

	return &responses.WizardSnapshot{
		WizardID:       w.id,
		Kind:           w.schema.Kind,
		Mode:           w.mode,
		CurrentStep:    w.currentStep,
		Steps:          steps,
		Values:         values,
		Errors:         fieldErrors,
		SectionToggles: toggles,
		IsSubmitting:   w.submitting,
		SubmitError:    w.submitErr,
	}
}
