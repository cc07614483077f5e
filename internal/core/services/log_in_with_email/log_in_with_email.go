package loginwithemail

import (
	"context"
	"errors"
	"time"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password account.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in-with-email::" + string(i.Email)
}

type Result struct {
	Account account.Account
	Token   account.SessionToken
}

type service struct {
	log               logging.Logger
	accountRepository account.Repository
	passwordHasher    account.PasswordHasher
	tokenIssuer       account.TokenIssuer
	now               func() time.Time
}

// New creates the login service. The credential is checked before the
// verified flag so an unverified-account response is never a password
// oracle, and an unknown email costs a dummy hash to even out timing.
func New(
	log logging.Logger,
	accountRepository account.Repository,
	passwordHasher account.PasswordHasher,
	tokenIssuer account.TokenIssuer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
		tokenIssuer:       tokenIssuer,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	a, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, account.ErrInvalidCredentials
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, a.PasswordHash) {
		return result, account.ErrInvalidCredentials
	}
	if !a.IsVerified() {
		return result, account.ErrAccountNotVerified
	}

	token, err := s.tokenIssuer.IssueToken(a, s.now())
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue session token.",
			logging.Entry("accountID", a.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Account successfully authenticated, session token issued.",
		logging.Entry("accountID", a.ID),
	)
	return Result{Account: a, Token: token}, nil
}
