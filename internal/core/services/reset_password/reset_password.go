package resetpassword

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
	Code        code.Code
	NewPassword account.RawPassword
}

type Result struct {
	Account account.Account
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher account.PasswordHasher
	eventPublisher events.Publisher
	now            func() time.Time
}

// New creates the password reset service. The code redemption and the
// password overwrite share a transaction, so a redeemed code always means
// a changed password.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
	eventPublisher events.Publisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
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
		passwordHasher: passwordHasher,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	redeemed, err := uow.Codes().Redeem(ctx, input.Code, code.PurposePasswordReset)
	if errors.Is(err, code.ErrInvalidCode) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not redeem password reset code.", logging.Entry("err", err))
		return result, err
	}
	now := s.now()
	if redeemed.IsExpired(now) {
		s.log.Info(
			ctx,
			"Password reset code has expired.",
			logging.Entry("accountID", redeemed.AccountID),
			logging.Entry("expiresAt", redeemed.ExpiresAt),
		)
		return result, code.ErrInvalidCode
	}

	updatedAccount, err := uow.Accounts().SetPassword(ctx, redeemed.AccountID, newPasswordHash)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		return result, code.ErrInvalidCode
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set new password.",
			logging.Entry("accountID", redeemed.AccountID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("accountID", updatedAccount.ID))
	s.eventPublisher.Publish(ctx, events.Event{
		Type:      events.AccountPasswordReset,
		AccountID: updatedAccount.ID,
		Email:     updatedAccount.Email,
		At:        now,
	})
	return Result{Account: updatedAccount}, nil
}
