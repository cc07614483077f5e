package verifyemail

import (
	"context"
	"errors"
	"time"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/events"
	"userapp/internal/core/domain/logging"
	uow "userapp/internal/core/domain/unit_of_work"
	"userapp/internal/core/services"
)

type Input struct {
	Code code.Code
}

type Result struct {
	Account account.Account
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	eventPublisher events.Publisher
	now            func() time.Time
}

// New creates the verification service. The code is redeemed and the account
// marked verified in one transaction; of two concurrent redemptions of the
// same code exactly one succeeds.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	eventPublisher events.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	redeemed, err := uow.Codes().Redeem(ctx, input.Code, code.PurposeEmailVerification)
	if errors.Is(err, code.ErrInvalidCode) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not redeem verification code.", logging.Entry("err", err))
		return result, err
	}
	now := s.now()
	if redeemed.IsExpired(now) {
		s.log.Info(
			ctx,
			"Verification code has expired.",
			logging.Entry("accountID", redeemed.AccountID),
			logging.Entry("expiresAt", redeemed.ExpiresAt),
		)
		return result, code.ErrInvalidCode
	}

	verifiedAccount, err := uow.Accounts().SetVerified(ctx, redeemed.AccountID, now)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, code.ErrInvalidCode
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not mark account as verified.",
			logging.Entry("accountID", redeemed.AccountID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "Account email successfully verified.", logging.Entry("accountID", verifiedAccount.ID))
	s.eventPublisher.Publish(ctx, events.Event{
		Type:      events.AccountVerified,
		AccountID: verifiedAccount.ID,
		Email:     verifiedAccount.Email,
		At:        now,
	})
	return Result{Account: verifiedAccount}, nil
}
