package account

import (
	"context"
	"time"

	c "userapp/internal/core/domain/common"
)

type CreateAccountInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	FirstName    string
	LastName     string
	Country      string
	Image        c.Optional[string]
	CreatedAt    time.Time
}

// UpdateAccountInput carries the whitelisted profile fields. Every field is
// guarded by a Do*Update flag so absent fields are left untouched; email,
// password hash and the verified flag are deliberately not updatable here.
type UpdateAccountInput struct {
	ID                ID
	DoFirstNameUpdate bool
	FirstName         string
	DoLastNameUpdate  bool
	LastName          string
	DoCountryUpdate   bool
	Country           string
	DoImageUpdate     bool
	Image             c.Optional[string]
}

type Repository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	List(ctx context.Context) ([]Account, error)
	GetByID(ctx context.Context, id ID) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
	Update(ctx context.Context, input UpdateAccountInput) (Account, error)
	SetVerified(ctx context.Context, id ID, at time.Time) (Account, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) (Account, error)
	Delete(ctx context.Context, id ID) error
}
