package auth

import (
	"context"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedAccount(a account.Account) Input
}

type service[T Input, S any] struct {
	tokenVerifier     account.TokenVerifier
	accountRepository account.Repository
	inner             services.Service[T, S]
}

// WithAuthentication verifies the session token attached to the request
// context and injects the fresh account row into the wrapped service's input.
func WithAuthentication[T Input, S any](
	tokenVerifier account.TokenVerifier,
	accountRepository account.Repository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if tokenVerifier == nil {
		panic(e.NewNilArgumentError("tokenVerifier"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		tokenVerifier:     tokenVerifier,
		accountRepository: accountRepository,
		inner:             inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(account.SessionToken)
	if !ok {
		return result, account.ErrInvalidSessionToken
	}
	accountID, err := s.tokenVerifier.VerifyToken(authToken)
	if err != nil {
		return result, err
	}
	a, err := s.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedAccount(a).(T))
}
