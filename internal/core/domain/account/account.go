package account

import (
	"context"
	"fmt"
	"time"

	c "userapp/internal/core/domain/common"
	e "userapp/internal/core/domain/errors"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type Account struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	FirstName    string
	LastName     string
	Country      string
	Image        c.Optional[string]
	CreatedAt    time.Time
	VerifiedAt   c.Optional[time.Time]
}

func (a *Account) Validate() error {
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for account %d", a.ID))
	}
	return nil
}

func (a *Account) IsVerified() bool {
	return a.VerifiedAt.IsPresent
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

// TokenIssuer signs a session token asserting the account's identity.
type TokenIssuer interface {
	IssueToken(account Account, now time.Time) (SessionToken, error)
}

// TokenVerifier checks a session token's signature and expiry and reports
// the account it was issued for.
type TokenVerifier interface {
	VerifyToken(token SessionToken) (ID, error)
}

type VerificationEmailSender interface {
	SendVerificationCode(ctx context.Context, account Account, code string, frontBaseURL string) error
}

type PasswordResetEmailSender interface {
	SendPasswordResetCode(ctx context.Context, account Account, code string, frontBaseURL string) error
}
