package registration

import (
	"healthfirst-service/internal/pkg/constvars"
)

type Field struct {
	Name    string
	Rules   []Rule
	Section string // name of the optional section this field belongs to, if any
	List    bool   // list-of-strings field
	// CreateOnly fields are removed from the form in edit mode, whether or
	// not their step survives.
	CreateOnly bool
}

type Step struct {
	Label string
	Icon  string
	// Fields are validated together when leaving the step.
	Fields []string
	// CreateOnly steps are dropped in edit mode.
	CreateOnly bool
}

// Schema describes one registration form: its step layout, field rules, and
// which optional sections it carries.
type Schema struct {
	Kind     string
	Steps    []Step
	Fields   map[string]Field
	Sections []string
}

func (s *Schema) StepsFor(mode string) []Step {
	if mode != ModeEdit {
		return s.Steps
	}
	steps := make([]Step, 0, len(s.Steps))
	for _, step := range s.Steps {
		if step.CreateOnly {
			continue
		}
		fields := make([]string, 0, len(step.Fields))
		for _, name := range step.Fields {
			if field, ok := s.Fields[name]; ok && field.CreateOnly {
				continue
			}
			fields = append(fields, name)
		}
		step.Fields = fields
		steps = append(steps, step)
	}
	return steps
}

func (s *Schema) Field(name string) (Field, bool) {
	field, ok := s.Fields[name]
	return field, ok
}

func (s *Schema) HasSection(name string) bool {
	for _, section := range s.Sections {
		if section == name {
			return true
		}
	}
	return false
}

func ProviderSchema() *Schema {
	fields := map[string]Field{
		"first_name": {Name: "first_name", Rules: []Rule{
			Required("First name is required"),
			MinLength(2, "First name must be at least 2 characters"),
			MaxLength(50, "First name must be less than 50 characters"),
		}},
		"last_name": {Name: "last_name", Rules: []Rule{
			Required("Last name is required"),
			MinLength(2, "Last name must be at least 2 characters"),
			MaxLength(50, "Last name must be less than 50 characters"),
		}},
		"email": {Name: "email", Rules: []Rule{
			Required("Email is required"),
			Email("Please enter a valid email address"),
		}},
		"phone_number": {Name: "phone_number", Rules: []Rule{
			Required("Phone number is required"),
			Pattern(constvars.RegexPhoneNumberE164, "Please enter a valid phone number"),
		}},
		"password": {Name: "password", CreateOnly: true, Rules: []Rule{
			Required("Password is required"),
			MinLength(8, "Password must be at least 8 characters"),
			PasswordComplexity(true, "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"),
		}},
		"confirm_password": {Name: "confirm_password", CreateOnly: true, Rules: []Rule{
			Required("Please confirm your password"),
			MatchesField("password", "Passwords must match"),
		}},
		"specialization": {Name: "specialization", Rules: []Rule{
			Required("Specialization is required"),
			MinLength(3, "Specialization must be at least 3 characters"),
			MaxLength(100, "Specialization must be less than 100 characters"),
		}},
		"license_number": {Name: "license_number", Rules: []Rule{
			Required("License number is required"),
			Pattern(constvars.RegexAlphanumeric, "License number must be alphanumeric"),
		}},
		"years_of_experience": {Name: "years_of_experience", Rules: []Rule{
			Required("Years of experience is required"),
			MinNumber(0, "Years of experience must be at least 0"),
			MaxNumber(50, "Years of experience must be less than 50"),
		}},
		"street": {Name: "street", Rules: []Rule{
			Required("Street address is required"),
			MaxLength(200, "Street address must be less than 200 characters"),
		}},
		"city": {Name: "city", Rules: []Rule{
			Required("City is required"),
			MaxLength(100, "City must be less than 100 characters"),
		}},
		"state": {Name: "state", Rules: []Rule{
			Required("State is required"),
			MaxLength(50, "State must be less than 50 characters"),
		}},
		"zip": {Name: "zip", Rules: []Rule{
			Required("ZIP code is required"),
			Pattern(constvars.RegexZIPCode, "Please enter a valid ZIP code"),
		}},
	}

	return &Schema{
		Kind: constvars.RecordKindProvider,
		Steps: []Step{
			{Label: "Personal Information", Icon: "person", Fields: []string{"first_name", "last_name", "email", "phone_number"}},
			{Label: "Security", Icon: "security", Fields: []string{"password", "confirm_password"}, CreateOnly: true},
			{Label: "Professional Details", Icon: "work", Fields: []string{"specialization", "license_number", "years_of_experience"}},
			{Label: "Clinic Address", Icon: "location", Fields: []string{"street", "city", "state", "zip"}},
		},
		Fields: fields,
	}
}

func PatientSchema() *Schema {
	genders := []string{"male", "female", "other", "prefer_not_to_say"}

	fields := map[string]Field{
		"first_name": {Name: "first_name", Rules: []Rule{
			Required("First name is required"),
			MinLength(2, "First name must be at least 2 characters"),
			MaxLength(50, "First name must be less than 50 characters"),
		}},
		"last_name": {Name: "last_name", Rules: []Rule{
			Required("Last name is required"),
			MinLength(2, "Last name must be at least 2 characters"),
			MaxLength(50, "Last name must be less than 50 characters"),
		}},
		"email": {Name: "email", Rules: []Rule{
			Required("Email is required"),
			Email("Please enter a valid email address"),
		}},
		"phone_number": {Name: "phone_number", Rules: []Rule{
			Required("Phone number is required"),
			Pattern(constvars.RegexPhoneNumberLoose, "Please enter a valid phone number"),
		}},
		"password": {Name: "password", CreateOnly: true, Rules: []Rule{
			Required("Password is required"),
			MinLength(8, "Password must be at least 8 characters"),
			PasswordComplexity(false, "Password must contain at least one uppercase letter, one lowercase letter, and one number"),
		}},
		"confirm_password": {Name: "confirm_password", CreateOnly: true, Rules: []Rule{
			Required("Please confirm your password"),
			MatchesField("password", "Passwords must match"),
		}},
		"date_of_birth": {Name: "date_of_birth", Rules: []Rule{
			Required("Date of birth is required"),
			ValidDate("Please enter a valid date"),
			NotFutureDate("Date of birth cannot be in the future"),
			MinAge(13, "You must be at least 13 years old"),
		}},
		"gender": {Name: "gender", Rules: []Rule{
			Required("Please select a gender"),
			OneOf(genders, "Please select a gender"),
		}},
		"street": {Name: "street", Rules: []Rule{
			Required("Street address is required"),
			MaxLength(200, "Street address must be less than 200 characters"),
		}},
		"city": {Name: "city", Rules: []Rule{
			Required("City is required"),
			MaxLength(100, "City must be less than 100 characters"),
		}},
		"state": {Name: "state", Rules: []Rule{
			Required("State is required"),
			MaxLength(50, "State must be less than 50 characters"),
		}},
		"zip": {Name: "zip", Rules: []Rule{
			Required("ZIP code is required"),
			Pattern(constvars.RegexZIPCode, "Please enter a valid ZIP code"),
		}},
		"emergency_contact_name": {Name: "emergency_contact_name", Section: constvars.SectionEmergencyContact, Rules: []Rule{
			MaxLength(100, "Emergency contact name must be less than 100 characters"),
		}},
		"emergency_contact_phone": {Name: "emergency_contact_phone", Section: constvars.SectionEmergencyContact, Rules: []Rule{
			Pattern(constvars.RegexPhoneNumberLoose, "Please enter a valid phone number"),
		}},
		"emergency_contact_relationship": {Name: "emergency_contact_relationship", Section: constvars.SectionEmergencyContact, Rules: []Rule{
			MaxLength(50, "Relationship must be less than 50 characters"),
		}},
		"insurance_provider": {Name: "insurance_provider", Section: constvars.SectionInsurance},
		"policy_number":      {Name: "policy_number", Section: constvars.SectionInsurance},
		"medical_history":    {Name: "medical_history", Section: constvars.SectionMedicalHistory, List: true},
	}

	return &Schema{
		Kind: constvars.RecordKindPatient,
		Steps: []Step{
			{Label: "Patient Registration", Icon: "person", Fields: []string{
				"first_name", "last_name", "email", "phone_number",
				"password", "confirm_password", "date_of_birth", "gender",
				"street", "city", "state", "zip",
				"emergency_contact_name", "emergency_contact_phone", "emergency_contact_relationship",
				"insurance_provider", "policy_number", "medical_history",
			}},
		},
		Fields: fields,
		Sections: []string{
			constvars.SectionEmergencyContact,
			constvars.SectionInsurance,
			constvars.SectionMedicalHistory,
		},
	}
}

func SchemaFor(kind string) (*Schema, bool) {
	switch kind {
	case constvars.RecordKindProvider:
		return ProviderSchema(), true
	case constvars.RecordKindPatient:
		return PatientSchema(), true
	default:
		return nil, false
	}
}
