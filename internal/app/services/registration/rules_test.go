package registration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	rule := Required("First name is required")

	assert.Equal(t, "First name is required", rule(nil, nil))
	assert.Equal(t, "First name is required", rule("", nil))
	assert.Equal(t, "First name is required", rule("   ", nil))
	assert.Equal(t, "", rule("Jane", nil))
}

func TestLengthRules(t *testing.T) {
	min := MinLength(2, "too short")
	max := MaxLength(5, "too long")

	assert.Equal(t, "too short", min("a", nil))
	assert.Equal(t, "", min("ab", nil))
	assert.Equal(t, "too long", max("abcdef", nil))
	assert.Equal(t, "", max("abcde", nil))

	// Optional semantics: empty values pass everything but Required.
	assert.Equal(t, "", min("", nil))
	assert.Equal(t, "", max("", nil))
}

func TestEmailRule(t *testing.T) {
	rule := Email("Please enter a valid email address")

	assert.Equal(t, "", rule("demo@example.com", nil))
	assert.Equal(t, "Please enter a valid email address", rule("not-an-email", nil))
	assert.Equal(t, "Please enter a valid email address", rule("missing@tld", nil))
}

func TestMatchesField(t *testing.T) {
	rule := MatchesField("password", "Passwords must match")
	values := map[string]interface{}{"password": "Secret123!"}

	assert.Equal(t, "", rule("Secret123!", values))
	assert.Equal(t, "Passwords must match", rule("Other123!", values))
}

func TestPasswordComplexity(t *testing.T) {
	withSpecial := PasswordComplexity(true, "needs special")
	withoutSpecial := PasswordComplexity(false, "needs mix")

	assert.Equal(t, "needs special", withSpecial("Password1", nil))
	assert.Equal(t, "", withSpecial("Password1!", nil))
	assert.Equal(t, "", withoutSpecial("Password1", nil))
	assert.Equal(t, "needs mix", withoutSpecial("password1", nil))
}

func TestNotFutureDate(t *testing.T) {
	rule := NotFutureDate("Date of birth cannot be in the future")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	assert.Equal(t, "Date of birth cannot be in the future", rule(tomorrow, nil))
	assert.Equal(t, "", rule("1990-06-15", nil))
}

func TestMinAge_IsCalendarExact(t *testing.T) {
	rule := MinAge(13, "You must be at least 13 years old")
	now := time.Now()

	// Turns 13 tomorrow: still 12 today.
	almostThirteen := now.AddDate(-13, 0, 1).Format("2006-01-02")
	assert.Equal(t, "You must be at least 13 years old", rule(almostThirteen, nil))

	// Turned 13 today: passes.
	exactlyThirteen := now.AddDate(-13, 0, 0).Format("2006-01-02")
	assert.Equal(t, "", rule(exactlyThirteen, nil))

	comfortablyOlder := now.AddDate(-30, 0, 0).Format("2006-01-02")
	assert.Equal(t, "", rule(comfortablyOlder, nil))
}

func TestNumberRules_AcceptJSONAndStringNumbers(t *testing.T) {
	min := MinNumber(0, "Years of experience must be at least 0")
	max := MaxNumber(50, "Years of experience must be less than 50")

	assert.Equal(t, "", min(float64(5), nil))
	assert.Equal(t, "Years of experience must be at least 0", min(float64(-1), nil))
	assert.Equal(t, "Years of experience must be less than 50", max("51", nil))
	assert.Equal(t, "", max("50", nil))
}

func TestOneOf(t *testing.T) {
	rule := OneOf([]string{"male", "female", "other", "prefer_not_to_say"}, "Please select a gender")

	for _, option := range []string{"male", "female", "other", "prefer_not_to_say"} {
		assert.Equal(t, "", rule(option, nil), fmt.Sprintf("option %s", option))
	}
	assert.Equal(t, "Please select a gender", rule("unknown", nil))
}

func TestZipAndPhonePatterns(t *testing.T) {
	provider := ProviderSchema()
	patient := PatientSchema()

	zipRules := provider.Fields["zip"].Rules
	assert.Equal(t, "", runRules(zipRules, "12345"))
	assert.Equal(t, "", runRules(zipRules, "12345-6789"))
	assert.Equal(t, "Please enter a valid ZIP code", runRules(zipRules, "1234"))

	providerPhone := provider.Fields["phone_number"].Rules
	assert.Equal(t, "", runRules(providerPhone, "+15551234567"))
	assert.Equal(t, "Please enter a valid phone number", runRules(providerPhone, "(555) 123-4567"))

	// Patient phone accepts the looser formatting.
	patientPhone := patient.Fields["phone_number"].Rules
	assert.Equal(t, "", runRules(patientPhone, "(555) 123-4567"))
}

func runRules(rules []Rule, value interface{}) string {
	for _, rule := range rules {
		if message := rule(value, nil); message != "" {
			return message
		}
	}
	return ""
}
