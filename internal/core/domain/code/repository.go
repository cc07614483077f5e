package code

import (
	"context"
	"time"

	"userapp/internal/core/domain/account"
)

type CreateCodeInput struct {
	Code      Code
	AccountID account.ID
	Purpose   Purpose
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Repository interface {
	// Create persists a new code and deletes any outstanding codes for the
	// same account and purpose, so at most one code per flow is live.
	Create(ctx context.Context, input CreateCodeInput) (OneTimeCode, error)
	// Redeem deletes the code and returns it. A code can be redeemed exactly
	// once: concurrent redemptions race on the delete and the loser gets
	// ErrInvalidCode. Expiry is NOT checked here, callers must check
	// IsExpired on the returned code.
	Redeem(ctx context.Context, c Code, purpose Purpose) (OneTimeCode, error)
}
