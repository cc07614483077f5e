package code

import (
	"time"

	"userapp/internal/core/domain/account"
)

// Purpose binds a one-time code to the flow that issued it. A code issued
// for email verification must not reset a password and vice versa.
type Purpose string

const (
	PurposeEmailVerification = Purpose("email_verification")
	PurposePasswordReset     = Purpose("password_reset")
)

type Code string

type OneTimeCode struct {
	Code      Code
	AccountID account.ID
	Purpose   Purpose
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Generator produces opaque codes with enough entropy to make guessing
// infeasible.
type Generator interface {
	GenerateCode() Code
}
