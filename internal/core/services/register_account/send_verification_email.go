package registeraccount

import (
	"context"
	"errors"
	"time"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/events"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

type serviceWithVerificationEmailSending struct {
	log            logging.Logger
	sender         account.VerificationEmailSender
	eventPublisher events.Publisher
	now            func() time.Time
	inner          services.Service[Input, Result]
}

// NewWithVerificationEmailSending wraps the registration service with
// verification email delivery and event publishing. The email goes out only
// after the inner service has committed.
func NewWithVerificationEmailSending(
	log logging.Logger,
	sender account.VerificationEmailSender,
	eventPublisher events.Publisher,
	now func() time.Time,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithVerificationEmailSending{
		log:            log,
		sender:         sender,
		eventPublisher: eventPublisher,
		now:            now,
		inner:          inner,
	}
}

func (s *serviceWithVerificationEmailSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending verification email.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendVerificationCode(ctx, result.Account, string(result.Code.Code), input.FrontBaseURL)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send verification email.",
			logging.Entry("accountID", result.Account.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Verification email has been sent.",
		logging.Entry("accountID", result.Account.ID),
	)
	s.eventPublisher.Publish(ctx, events.Event{
		Type:      events.AccountRegistered,
		AccountID: result.Account.ID,
		Email:     result.Account.Email,
		At:        s.now(),
	})
	return result, nil
}
