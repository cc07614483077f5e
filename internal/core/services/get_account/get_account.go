package getaccount

import (
	"context"
	"errors"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

type Input struct {
	AccountID account.ID
}

type Result struct {
	Account account.Account
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
}

func New(
	log logging.Logger,
	accountRepository account.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByID(ctx, input.AccountID)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.AccountID))
		return result, err
	}
	return Result{Account: a}, nil
}
