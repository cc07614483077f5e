package response

import (
	"time"

	"userapp/internal/core/domain/account"
)

// Account is the public representation. The password hash never appears
// here.
type Account struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Country    string     `json:"country"`
	Image      *string    `json:"image,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	IsVerified bool       `json:"is_verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

func (a *Account) FromDomainAccount(da account.Account) {
	a.ID = int64(da.ID)
	a.Email = string(da.Email)
	a.FirstName = da.FirstName
	a.LastName = da.LastName
	a.Country = da.Country
	if da.Image.IsPresent {
		image := da.Image.Value
		a.Image = &image
	}
	a.CreatedAt = da.CreatedAt
	a.IsVerified = da.IsVerified()
	if da.VerifiedAt.IsPresent {
		verifiedAt := da.VerifiedAt.Value
		a.VerifiedAt = &verifiedAt
	}
}
