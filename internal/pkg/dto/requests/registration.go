package requests

type CreateWizard struct {
	// InitialValues switches the wizard to edit mode: fields are
	// pre-populated and the password step is dropped entirely.
	InitialValues map[string]interface{} `json:"initial_values,omitempty"`
	RecordID      string                 `json:"record_id,omitempty"`
}

type SetWizardField struct {
	Value interface{} `json:"value"`
}

type ToggleWizardSection struct {
	On bool `json:"on"`
}

type AppendWizardItem struct {
	Item string `json:"item" validate:"required"`
}

type RemoveWizardItem struct {
	Item string `json:"item" validate:"required"`
}

type PasswordStrength struct {
	Password string `json:"password"`
}
