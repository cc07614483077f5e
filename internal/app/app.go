package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"userapp/internal/app/deps"
	"userapp/internal/app/services"
	getaccount "userapp/internal/http/handlers/accounts/get_account"
	internalevents "userapp/internal/http/handlers/accounts/internal_events"
	listaccounts "userapp/internal/http/handlers/accounts/list_accounts"
	"userapp/internal/http/handlers/accounts/me"
	registeraccount "userapp/internal/http/handlers/accounts/register_account"
	removeaccount "userapp/internal/http/handlers/accounts/remove_account"
	updateaccount "userapp/internal/http/handlers/accounts/update_account"
	"userapp/internal/http/handlers/auth"
	loginwithemail "userapp/internal/http/handlers/auth/log_in_with_email"
	resetpassword "userapp/internal/http/handlers/auth/reset_password"
	sendpasswordresetcode "userapp/internal/http/handlers/auth/send_password_reset_code"
	verifyemail "userapp/internal/http/handlers/auth/verify_email"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	accountsRouter := chi.NewRouter()
	accountsRouter.Use(auth.SetAuthTokenToContext)
	accountsRouter.Method(http.MethodGet, "/", listaccounts.New(s.ListAccounts))
	accountsRouter.Method(http.MethodPost, "/", registeraccount.New(s.RegisterAccount, isTestMode))
	accountsRouter.Method(http.MethodGet, "/me", me.New(s.GetLoggedInAccount))
	accountsRouter.Method(
		http.MethodGet,
		"/internal/events",
		internalevents.New(deps.Logger, deps.SseServer, deps.Config.InternalEventsToken),
	)
	accountsRouter.Method(http.MethodGet, "/{accountID}", getaccount.New(s.GetAccount))
	accountsRouter.Method(http.MethodPatch, "/{accountID}", updateaccount.New(s.UpdateAccount))
	accountsRouter.Method(http.MethodDelete, "/{accountID}", removeaccount.New(s.RemoveAccount))

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/verify_email/{code}", verifyemail.New(s.VerifyEmail))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresetcode.New(s.SendPasswordResetCode, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset/{code}", resetpassword.New(s.ResetPassword))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/accounts", accountsRouter)
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
