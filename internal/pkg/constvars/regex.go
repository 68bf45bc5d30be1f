package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[@$!%*?&]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexContainAtLeastOneLowercase   = `[a-z]`
	RegexContainAtLeastOneDigit       = `\d`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric                 = `^[a-zA-Z0-9]+$`
	RegexZIPCode                      = `^\d{5}(-\d{4})?$`
	RegexPhoneNumberE164              = `^\+?[1-9]\d{1,14}$`
	RegexPhoneNumberLoose             = `^\+?[\d\s\-()]+$`
	RegexDateYYYYMMDD                 = `^\d{4}-\d{2}-\d{2}$`
)
