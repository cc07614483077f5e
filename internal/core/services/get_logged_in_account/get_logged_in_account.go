package getloggedinaccount

import (
	"context"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/services"
	"userapp/internal/core/services/auth"
)

type Input struct {
	Account account.Account
}

func (i Input) WithAuthenticatedAccount(a account.Account) auth.Input {
	i.Account = a
	return i
}

type Result struct {
	Account account.Account
}

type service struct{}

// New returns the identity attached by the authentication decorator.
func New() services.Service[Input, Result] {
	return &service{}
}

func (s *service) Run(ctx context.Context, input Input) (Result, error) {
	return Result{Account: input.Account}, nil
}
