package responses

// WizardSnapshot is the wizard state returned after every wizard operation.
// Field-level validation errors live here; they are never surfaced as HTTP
// errors.
type WizardSnapshot struct {
	WizardID       string                 `json:"wizard_id"`
	Kind           string                 `json:"kind"`
	Mode           string                 `json:"mode"`
	CurrentStep    int                    `json:"current_step"`
	Steps          []WizardStep           `json:"steps"`
	Values         map[string]interface{} `json:"values"`
	Errors         map[string]string      `json:"errors,omitempty"`
	SectionToggles map[string]bool        `json:"section_toggles,omitempty"`
	IsSubmitting   bool                   `json:"is_submitting"`
	SubmitError    string                 `json:"submit_error,omitempty"`
}

type WizardStep struct {
	Label    string   `json:"label"`
	Icon     string   `json:"icon"`
	Fields   []string `json:"fields"`
	Complete bool     `json:"complete"`
}

type WizardCreated struct {
	WizardID string         `json:"wizard_id"`
	Snapshot WizardSnapshot `json:"snapshot"`
}

type PasswordStrength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}
