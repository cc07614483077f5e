package updateaccount

import (
	"context"
	"errors"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

type Input struct {
	Update account.UpdateAccountInput
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
	updatedAccount, err := s.accountRepository.Update(ctx, input.Update)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.Update.ID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Account successfully updated.",
		logging.Entry("accountID", updatedAccount.ID),
	)
	return Result{Account: updatedAccount}, nil
}
