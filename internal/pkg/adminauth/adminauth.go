package adminauth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ManuelReschke/Folio/internal/pkg/env"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotConfigured      = errors.New("admin login is not configured")
)

// Credentials are the single admin account. Either Password or PasswordHash
// (bcrypt) must be set; the hash wins when both are present.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
	APIKey       string
	OAuthEmails  []string
}

// FromEnv reads the admin account from the environment
func FromEnv() Credentials {
	return Credentials{
		Username:     env.GetEnv("ADMIN_USERNAME", ""),
		Password:     env.GetEnv("ADMIN_PASSWORD", ""),
		PasswordHash: env.GetEnv("ADMIN_PASSWORD_HASH", ""),
		APIKey:       env.GetEnv("ADMIN_API_KEY", ""),
		OAuthEmails:  env.GetList("ADMIN_OAUTH_EMAILS"),
	}
}

// Configured reports whether password login is possible
func (c Credentials) Configured() bool {
	return c.Username != "" && (c.Password != "" || c.PasswordHash != "")
}

// Verify checks a login attempt
func (c Credentials) Verify(username, password string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	userOK := equal(username, c.Username)
	var passOK bool
	if c.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	} else {
		passOK = equal(password, c.Password)
	}

	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// VerifyAPIKey checks the key of an admin API request. An unset key
// disables the admin API.
func (c Credentials) VerifyAPIKey(key string) bool {
	if c.APIKey == "" || key == "" {
		return false
	}
	return equal(key, c.APIKey)
}

// AllowsEmail reports whether an OAuth identity may sign in as admin
func (c Credentials) AllowsEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, allowed := range c.OAuthEmails {
		if strings.ToLower(allowed) == email {
			return true
		}
	}
	return false
}

// HashPassword creates a bcrypt hash for ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// equal compares in constant time regardless of input lengths
func equal(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
