package auth

// StrongPassword reports whether a candidate password satisfies the signup
// policy: at least 8 characters with at least one lowercase letter, one
// uppercase letter, one digit, and one character outside [A-Za-z0-9].
// All four classes are required; there is no partial credit.
func StrongPassword(pw string) bool {
	var lower, upper, digit, special bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return len(pw) >= 8 && lower && upper && digit && special
}
