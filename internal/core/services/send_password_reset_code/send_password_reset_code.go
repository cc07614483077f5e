package sendpasswordresetcode

import (
	"context"
	"errors"
	"time"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	c "userapp/internal/core/domain/common"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	uow "userapp/internal/core/domain/unit_of_work"
	"userapp/internal/core/services"
)

type Input struct {
	Email        c.Email
	FrontBaseURL string
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-code::" + string(i.Email)
}

type Result struct {
	Account account.Account
	Code    code.OneTimeCode
}

type service struct {
	log           logging.Logger
	unitOfWork    uow.UnitOfWork
	codeGenerator code.Generator
	codeTTL       time.Duration
	now           func() time.Time
}

// New creates the reset-request service. Issuing a new code supersedes any
// outstanding reset code for the account.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	codeGenerator code.Generator,
	codeTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if codeGenerator == nil {
		panic(e.NewNilArgumentError("codeGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:           log,
		unitOfWork:    unitOfWork,
		codeGenerator: codeGenerator,
		codeTTL:       codeTTL,
		now:           now,
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

	a, err := uow.Accounts().GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	now := s.now()
	resetCode, err := uow.Codes().Create(ctx, code.CreateCodeInput{
		Code:      s.codeGenerator.GenerateCode(),
		AccountID: a.ID,
		Purpose:   code.PurposePasswordReset,
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeTTL),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create password reset code.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	s.log.Info(ctx, "Password reset code has been created.", logging.Entry("accountID", a.ID))
	return Result{Account: a, Code: resetCode}, nil
}
