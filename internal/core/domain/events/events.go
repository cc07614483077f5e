package events

import (
	"context"
	"time"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
)

type Type string

const (
	AccountRegistered    = Type("account_registered")
	AccountVerified      = Type("account_verified")
	AccountPasswordReset = Type("account_password_reset")
)

// Event is an account lifecycle notification consumed by internal
// dashboards. Delivery is best effort, a lost event never fails the
// triggering request.
type Event struct {
	Type      Type
	AccountID account.ID
	Email     c.Email
	At        time.Time
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}
