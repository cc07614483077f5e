package services

import (
	"userapp/internal/app/deps"
	drl "userapp/internal/core/domain/rate_limiter"
	"userapp/internal/core/services"
	"userapp/internal/core/services/auth"
	getaccount "userapp/internal/core/services/get_account"
	getloggedinaccount "userapp/internal/core/services/get_logged_in_account"
	listaccounts "userapp/internal/core/services/list_accounts"
	loginwithemail "userapp/internal/core/services/log_in_with_email"
	ratelimiting "userapp/internal/core/services/rate_limiting"
	registeraccount "userapp/internal/core/services/register_account"
	removeaccount "userapp/internal/core/services/remove_account"
	resetpassword "userapp/internal/core/services/reset_password"
	sendpasswordresetcode "userapp/internal/core/services/send_password_reset_code"
	updateaccount "userapp/internal/core/services/update_account"
	verifyemail "userapp/internal/core/services/verify_email"
)

type Services struct {
	RegisterAccount       services.Service[registeraccount.Input, registeraccount.Result]
	ListAccounts          services.Service[listaccounts.Input, listaccounts.Result]
	GetAccount            services.Service[getaccount.Input, getaccount.Result]
	UpdateAccount         services.Service[updateaccount.Input, updateaccount.Result]
	RemoveAccount         services.Service[removeaccount.Input, removeaccount.Result]
	VerifyEmail           services.Service[verifyemail.Input, verifyemail.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	GetLoggedInAccount    services.Service[getloggedinaccount.Input, getloggedinaccount.Result]
	SendPasswordResetCode services.Service[sendpasswordresetcode.Input, sendpasswordresetcode.Result]
	ResetPassword         services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RegisterAccount = registeraccount.NewWithVerificationEmailSending(
		deps.Logger,
		deps.VerificationEmailSender,
		deps.EventPublisher,
		deps.Now,
		registeraccount.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.CodeGenerator,
			deps.Config.CodeValidDuration,
			deps.Now,
		),
	)
	s.ListAccounts = listaccounts.New(
		deps.Logger,
		deps.AccountRepository,
	)
	s.GetAccount = getaccount.New(
		deps.Logger,
		deps.AccountRepository,
	)
	s.UpdateAccount = updateaccount.New(
		deps.Logger,
		deps.AccountRepository,
	)
	s.RemoveAccount = removeaccount.New(
		deps.Logger,
		deps.AccountRepository,
	)
	s.VerifyEmail = verifyemail.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.EventPublisher,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.AccountRepository,
			deps.PasswordHasher,
			deps.TokenIssuer,
			deps.Now,
		),
	)
	s.GetLoggedInAccount = auth.WithAuthentication(
		deps.TokenVerifier,
		deps.AccountRepository,
		getloggedinaccount.New(),
	)
	s.SendPasswordResetCode = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresetcode.NewWithResetEmailSending(
			deps.Logger,
			deps.PasswordResetEmailSender,
			sendpasswordresetcode.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.CodeGenerator,
				deps.Config.CodeValidDuration,
				deps.Now,
			),
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.EventPublisher,
		deps.Now,
	)

	return s
}
