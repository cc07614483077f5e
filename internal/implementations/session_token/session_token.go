package sessiontoken

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"userapp/internal/core/domain/account"
)

const ISSUER = "userapp"

// claims carry a snapshot of the account so token consumers can render the
// identity without a DB roundtrip. The password hash is deliberately absent.
type claims struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Country    string `json:"country,omitempty"`
	Image      string `json:"image,omitempty"`
	IsVerified bool   `json:"is_verified"`
	jwt.RegisteredClaims
}

// HMAC issues and verifies HS256-signed session tokens. Tokens are
// stateless, revocation happens only through expiry.
type HMAC struct {
	secret []byte
	ttl    time.Duration
}

func NewHMAC(secret string, ttl time.Duration) *HMAC {
	return &HMAC{secret: []byte(secret), ttl: ttl}
}

func (h *HMAC) IssueToken(a account.Account, now time.Time) (account.SessionToken, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		claims{
			Email:      string(a.Email),
			FirstName:  a.FirstName,
			LastName:   a.LastName,
			Country:    a.Country,
			Image:      a.Image.Value,
			IsVerified: a.IsVerified(),
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Issuer:    ISSUER,
				Subject:   strconv.FormatInt(int64(a.ID), 10),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
			},
		},
	)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign session token: %w", err)
	}
	return account.SessionToken(signed), nil
}

func (h *HMAC) VerifyToken(token account.SessionToken) (account.ID, error) {
	var c claims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ISSUER),
	)
	_, err := parser.ParseWithClaims(string(token), &c, func(_ *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, account.ErrSessionTokenExpired
		}
		return 0, account.ErrInvalidSessionToken
	}
	accountID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, account.ErrInvalidSessionToken
	}
	return account.ID(accountID), nil
}
