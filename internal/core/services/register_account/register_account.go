package registeraccount

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
	Password     account.RawPassword
	FirstName    string
	LastName     string
	Country      string
	Image        c.Optional[string]
	FrontBaseURL string
}

type Result struct {
	Account account.Account
	Code    code.OneTimeCode
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher account.PasswordHasher
	codeGenerator  code.Generator
	codeTTL        time.Duration
	now            func() time.Time
}

// New creates the registration service. The account and its verification
// code are persisted in one transaction, so a registered account always has
// a code to redeem.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher account.PasswordHasher,
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
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if codeGenerator == nil {
		panic(e.NewNilArgumentError("codeGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		codeGenerator:  codeGenerator,
		codeTTL:        codeTTL,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	createdAccount, err := uow.Accounts().Create(ctx, account.CreateAccountInput{
		Email:        input.Email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Country:      input.Country,
		Image:        input.Image,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"Account with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new account.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	now := s.now()
	verificationCode, err := uow.Codes().Create(ctx, code.CreateCodeInput{
		Code:      s.codeGenerator.GenerateCode(),
		AccountID: createdAccount.ID,
		Purpose:   code.PurposeEmailVerification,
		CreatedAt: now,
		ExpiresAt: now.Add(s.codeTTL),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create verification code.",
			logging.Entry("accountID", createdAccount.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New account has been created.", logging.Entry("accountID", createdAccount.ID))
	return Result{Account: createdAccount, Code: verificationCode}, nil
}
