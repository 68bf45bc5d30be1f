package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one lowercase letter, one uppercase letter, and one number",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"boolean":  "must be true or false",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"gte":     true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password. Please try again."
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientFetchProviders                = "Failed to fetch providers"
	ErrClientFetchPatients                 = "Failed to fetch patients"
	ErrClientRegisterProvider              = "Failed to register provider"
	ErrClientRegisterPatient               = "Failed to register patient. Please try again."
	ErrClientUpdateProvider                = "Failed to update provider"
	ErrClientUpdatePatient                 = "Failed to update patient"
	ErrClientDeleteProvider                = "Failed to delete provider"
	ErrClientWizardNotFound                = "registration session not found or expired"
	ErrClientWizardStepInvalid             = "please complete the current step before continuing"
	ErrClientWizardSubmitInFlight          = "a submission is already in progress"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevUnauthorized              = "unauthorized access"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevUnknownRecordKind         = "unknown record kind"
	ErrDevRecordNotFound            = "record not found"
	ErrDevStoreUnreachable          = "record store unreachable"
	ErrDevWizardNotFound            = "wizard instance not found in store"
	ErrDevWizardUnknownField        = "field not present in wizard schema"
	ErrDevWizardUnknownSection      = "section not present in wizard schema"
	ErrDevWizardStepInvalid         = "current step has failing validators"
	ErrDevWizardSubmitInFlight      = "submit called while a submission is in flight"
	ErrDevWizardValidationFailed    = "one or more active fields failed validation"
	ErrDevWizardPersistenceFailed   = "persistence collaborator returned an error"
	ErrDevSessionStoreGet           = "failed to get session from store"
	ErrDevSessionStoreSet           = "failed to set session in store"
	ErrDevSessionStoreDelete        = "failed to delete session from store"
	ErrDevAuthGenerateToken         = "failed to generate authentication token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"

	// Redis
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string cannot be converted to ObjectID"
)
