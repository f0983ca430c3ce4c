package userControllers

import "strings"

// Mirrors the common registration policy: minimum length, not entirely
// numeric, not a widely used password.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"password1":  {},
	"12345678":   {},
	"123456789":  {},
	"qwerty123":  {},
	"iloveyou":   {},
	"letmein123": {},
	"admin12345": {},
}

func validatePasswordStrength(password string) string {
	if len(password) < 8 {
		return "This password is too short. It must contain at least 8 characters."
	}

	allDigits := true
	for _, r := range password {
		if r < '0' || r > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "This password is entirely numeric."
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return "This password is too common."
	}

	return ""
}
