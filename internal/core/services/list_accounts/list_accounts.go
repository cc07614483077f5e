package listaccounts

import (
	"context"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

type Input struct{}

type Result struct {
	Accounts []account.Account
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
	accounts, err := s.accountRepository.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Accounts: accounts}, nil
}
