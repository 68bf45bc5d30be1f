package registration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"healthfirst-service/internal/pkg/constvars"
)

// Rule inspects a single field value and returns a user-facing message when
// the value is invalid, or the empty string when it passes. Rules other than
// Required skip empty values, so optional fields only validate once filled in.
type Rule func(value interface{}, values map[string]interface{}) string

var (
	regexEmail       = regexp.MustCompile(constvars.RegexEmail)
	regexLowercase   = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	regexUppercase   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	regexDigit       = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	regexSpecialChar = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
)

func Required(message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		if isEmpty(value) {
			return message
		}
		return ""
	}
}

func MinLength(min int, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		if len([]rune(s)) < min {
			return message
		}
		return ""
	}
}

func MaxLength(max int, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		if len([]rune(s)) > max {
			return message
		}
		return ""
	}
}

func Email(message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		if !regexEmail.MatchString(s) {
			return message
		}
		return ""
	}
}

func Pattern(pattern string, message string) Rule {
	re := regexp.MustCompile(pattern)
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		if !re.MatchString(s) {
			return message
		}
		return ""
	}
}

// MatchesField fails when the value differs from another field, e.g. the
// password confirmation.
func MatchesField(other string, message string) Rule {
	return func(value interface{}, values map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		if s != asString(values[other]) {
			return message
		}
		return ""
	}
}

// PasswordComplexity enforces lowercase, uppercase and digit, plus one of
// @$!%*?& when requireSpecial is set.
func PasswordComplexity(requireSpecial bool, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		ok := regexLowercase.MatchString(s) &&
			regexUppercase.MatchString(s) &&
			regexDigit.MatchString(s)
		if ok && requireSpecial {
			ok = regexSpecialChar.MatchString(s)
		}
		if !ok {
			return message
		}
		return ""
	}
}

func ValidDate(message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return message
		}
		return ""
	}
}

func NotFutureDate(message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		date, err := time.Parse("2006-01-02", s)
		if err != nil {
			return ""
		}
		if date.After(time.Now()) {
			return message
		}
		return ""
	}
}

// MinAge checks age in whole years against today's calendar date, so a
// birthday later this year has not been counted yet.
func MinAge(years int, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		dob, err := time.Parse("2006-01-02", s)
		if err != nil {
			return ""
		}
		now := time.Now()
		age := now.Year() - dob.Year()
		if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
			age--
		}
		if age < years {
			return message
		}
		return ""
	}
}

func OneOf(options []string, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		s := asString(value)
		if s == "" {
			return ""
		}
		for _, option := range options {
			if s == option {
				return ""
			}
		}
		return message
	}
}

func MinNumber(min float64, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		n, ok := asNumber(value)
		if !ok {
			return ""
		}
		if n < min {
			return message
		}
		return ""
	}
}

func MaxNumber(max float64, message string) Rule {
	return func(value interface{}, _ map[string]interface{}) string {
		n, ok := asNumber(value)
		if !ok {
			return ""
		}
		if n > max {
			return message
		}
		return ""
	}
}

func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	default:
		return false
	}
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// asNumber reads JSON numbers (float64 after decoding) and numeric strings.
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
