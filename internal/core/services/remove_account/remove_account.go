package removeaccount

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

type Result struct{}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
}

// New creates the removal service. Deleting a missing account is not an
// error, the operation reports success either way.
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
	err = s.accountRepository.Delete(ctx, input.AccountID)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account to remove does not exist.", logging.Entry("accountID", input.AccountID))
		return result, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("accountID", input.AccountID))
		return result, err
	}
	s.log.Info(ctx, "Account has been removed.", logging.Entry("accountID", input.AccountID))
	return result, nil
}
