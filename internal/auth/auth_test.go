package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret", 60)

	token, err := issuer.Issue("staff-1", "drkc", "Dr. KC", "Veterinarian")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "staff-1", claims.Subject)
	assert.Equal(t, "drkc", claims.UserID)
	assert.Equal(t, "Veterinarian", claims.Role)
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", 60).Issue("staff-1", "drkc", "Dr. KC", "Veterinarian")
	assert.NoError(t, err)

	claims, err := NewTokenIssuer("secret-b", 60).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("unit-test-secret", -1)

	token, err := issuer.Issue("staff-1", "drkc", "Dr. KC", "Veterinarian")
	assert.NoError(t, err)

	claims, err := issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
