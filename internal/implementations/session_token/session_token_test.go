package sessiontoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/common"
)

const SECRET = "test-secret"

var NOW = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

func testAccount() account.Account {
	return account.Account{ID: account.ID(42), Email: common.NewEmail("test@test.test")}
}

func TestIssuedTokenVerifies(t *testing.T) {
	issuer := NewHMAC(SECRET, 24*time.Hour)

	token, err := issuer.IssueToken(testAccount(), time.Now().UTC())
	require.Nil(t, err)

	accountID, err := issuer.VerifyToken(token)
	assert.Nil(t, err)
	assert.Equal(t, account.ID(42), accountID)
}

func TestExpiredToken(t *testing.T) {
	issuer := NewHMAC(SECRET, 24*time.Hour)

	token, err := issuer.IssueToken(testAccount(), NOW)
	require.Nil(t, err)

	_, err = issuer.VerifyToken(token)
	assert.ErrorIs(t, err, account.ErrSessionTokenExpired)
}

func TestTokenSignedWithOtherSecret(t *testing.T) {
	issuer := NewHMAC(SECRET, 24*time.Hour)
	other := NewHMAC("other-secret", 24*time.Hour)

	token, err := other.IssueToken(testAccount(), time.Now().UTC())
	require.Nil(t, err)

	_, err = issuer.VerifyToken(token)
	assert.ErrorIs(t, err, account.ErrInvalidSessionToken)
}

func TestTokenWithUnexpectedSigningMethod(t *testing.T) {
	issuer := NewHMAC(SECRET, 24*time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    ISSUER,
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.Nil(t, err)

	_, err = issuer.VerifyToken(account.SessionToken(token))
	assert.ErrorIs(t, err, account.ErrInvalidSessionToken)
}

func TestGarbageToken(t *testing.T) {
	issuer := NewHMAC(SECRET, 24*time.Hour)

	_, err := issuer.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, account.ErrInvalidSessionToken)
}
