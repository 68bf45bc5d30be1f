package constvars

const (
	LoginSuccess              = "successfully logged in"
	LogoutSuccess             = "successfully logged out"
	ProvidersGetSuccess       = "successfully fetched providers"
	PatientsGetSuccess        = "successfully fetched patients"
	ProviderCreatedSuccess    = "successfully registered provider"
	ProviderUpdatedSuccess    = "successfully updated provider"
	ProviderDeletedSuccess    = "successfully deleted provider"
	PatientCreatedSuccess     = "successfully registered patient"
	WizardCreatedSuccess      = "registration session created"
	WizardStateSuccess        = "registration session state"
	WizardFieldSetSuccess     = "field updated"
	WizardStepSuccess         = "step changed"
	WizardSectionSuccess      = "section toggled"
	WizardItemAppendedSuccess = "item added"
	WizardSubmittedSuccess    = "registration submitted"
)
