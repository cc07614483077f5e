package sendpasswordresetcode

import (
	"context"
	"errors"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

type serviceWithResetEmailSending struct {
	log    logging.Logger
	sender account.PasswordResetEmailSender
	inner  services.Service[Input, Result]
}

func NewWithResetEmailSending(
	log logging.Logger,
	sender account.PasswordResetEmailSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithResetEmailSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithResetEmailSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending password reset email.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendPasswordResetCode(ctx, result.Account, string(result.Code.Code), input.FrontBaseURL)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset email.",
			logging.Entry("accountID", result.Account.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset email has been sent.",
		logging.Entry("accountID", result.Account.ID),
	)
	return result, nil
}
