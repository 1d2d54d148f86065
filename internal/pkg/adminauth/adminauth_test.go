package adminauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerify_PlainPassword(t *testing.T) {
	creds := Credentials{Username: "admin", Password: "s3cret"}

	assert.NoError(t, creds.Verify("admin", "s3cret"))
	assert.ErrorIs(t, creds.Verify("admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, creds.Verify("root", "s3cret"), ErrInvalidCredentials)
	assert.ErrorIs(t, creds.Verify("", ""), ErrInvalidCredentials)
}

func TestVerify_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	creds := Credentials{Username: "admin", PasswordHash: string(hash), Password: "ignored"}
	assert.NoError(t, creds.Verify("admin", "hashed-pass"))
	assert.ErrorIs(t, creds.Verify("admin", "ignored"), ErrInvalidCredentials)
}

func TestVerify_NotConfigured(t *testing.T) {
	assert.ErrorIs(t, Credentials{}.Verify("", ""), ErrNotConfigured)
	assert.ErrorIs(t, Credentials{Username: "admin"}.Verify("admin", ""), ErrNotConfigured)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, Credentials{Username: "a", PasswordHash: hash}.Verify("a", "pw"))
}

func TestVerifyAPIKey(t *testing.T) {
	assert.True(t, Credentials{APIKey: "k1"}.VerifyAPIKey("k1"))
	assert.False(t, Credentials{APIKey: "k1"}.VerifyAPIKey("k2"))
	assert.False(t, Credentials{APIKey: "k1"}.VerifyAPIKey(""))
	assert.False(t, Credentials{}.VerifyAPIKey(""))
}

func TestAllowsEmail(t *testing.T) {
	creds := Credentials{OAuthEmails: []string{"Prof@University.edu"}}

	assert.True(t, creds.AllowsEmail("prof@university.edu"))
	assert.True(t, creds.AllowsEmail(" PROF@university.edu "))
	assert.False(t, creds.AllowsEmail("student@university.edu"))
	assert.False(t, creds.AllowsEmail(""))
}
