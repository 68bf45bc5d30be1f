package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

// User types a session can be issued for.
const (
	UserTypeProvider = "provider"
	UserTypePatient  = "patient"
)

// Record kinds served by the directory services.
const (
	RecordKindProvider = "provider"
	RecordKindPatient  = "patient"
)

// Named views of the client navigation surface. Protected views redirect
// to ViewLogin when the session guard denies access.
const (
	ViewLogin                = "login"
	ViewProviderDashboard    = "provider-dashboard"
	ViewPatientDashboard     = "patient-dashboard"
	ViewProvidersList        = "providers-list"
	ViewProviderRegistration = "provider-registration"
	ViewPatientRegistration  = "patient-registration"
)

const (
	MongoCollectionProviders = "providers"
	MongoCollectionPatients  = "patients"
)

// Registration wizard section toggles.
const (
	SectionEmergencyContact = "emergency_contact"
	SectionInsurance        = "insurance"
	SectionMedicalHistory   = "medical_history"
)

// Pluggable storage backends selected via configuration.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	DirectoryBackendMemory = "memory"
	DirectoryBackendMongo  = "mongo"
)
