package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	sharedauth "portfolio-backend/internal/shared/auth"
)

// ErrBadCredentials is returned when the email/password pair does not match
// the configured admin.
var ErrBadCredentials = errors.New("invalid email or password")

const tokenTTL = 24 * time.Hour

// Service issues admin tokens against the single configured admin identity.
type Service struct {
	Secret        []byte
	AdminEmail    string
	AdminPassword string
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.AdminEmail == "" || s.AdminPassword == "" {
		return "", ErrBadCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrBadCredentials
	}
	return sharedauth.Sign(s.Secret, s.AdminEmail, "", tokenTTL)
}

// IsAdmin reports whether an externally verified email is the configured
// admin. Used by the Google sign-in flow.
func (s *Service) IsAdmin(email string) bool {
	return s.AdminEmail != "" &&
		strings.ToLower(strings.TrimSpace(email)) == s.AdminEmail
}

// SignFor issues a token for an already verified admin identity.
func (s *Service) SignFor(email, name string) (string, error) {
	return sharedauth.Sign(s.Secret, email, name, tokenTTL)
}
