package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token store keys shared by the auth flow and the HTTP client.
const (
	TokenKey    = "userToken"
	UserDataKey = "userData"
)

type AuthStatus string

const (
	AuthAnonymous      AuthStatus = "anonymous"
	AuthAuthenticating AuthStatus = "authenticating"
	AuthAuthenticated  AuthStatus = "authenticated"
	AuthError          AuthStatus = "error"
)

type AuthSession struct {
	User  User
	Token string
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	User
	Password string `json:"password"`
}

// NormalizeGender upper-cases the first letter, the form the API stores ("homme" -> "Homme").
func NormalizeGender(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(r)) + trimmed[size:]
}
