package registration

// PasswordStrength scores a candidate password 0-5: one point each for
// length >= 8, a lowercase letter, an uppercase letter, a digit, and one of
// @$!%*?&. An empty password scores 0 with an empty label.
func PasswordStrength(password string) (int, string) {
	if password == "" {
		return 0, ""
	}

	score := 0
	if len(password) >= 8 {
		score++
	}
	if regexLowercase.MatchString(password) {
		score++
	}
	if regexUppercase.MatchString(password) {
		score++
	}
	if regexDigit.MatchString(password) {
		score++
	}
	if regexSpecialChar.MatchString(password) {
		score++
	}

	labels := [...]string{"Very Weak", "Weak", "Fair", "Good", "Strong", "Very Strong"}
	return score, labels[score]
}
