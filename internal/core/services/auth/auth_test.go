package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
)

type testInput struct {
	Account account.Account
}

func (i testInput) WithAuthenticatedAccount(a account.Account) Input {
	i.Account = a
	return i
}

type testService struct {
	LastInput testInput
}

func (s *testService) Run(ctx context.Context, input testInput) (struct{}, error) {
	s.LastInput = input
	return struct{}{}, nil
}

func TestAuthenticatedAccountInjected(t *testing.T) {
	assert := require.New(t)
	repository := account.NewFakeRepository()
	a, err := repository.Create(context.Background(), account.CreateAccountInput{
		Email:        c.Email("test@test.test"),
		PasswordHash: account.PasswordHash("hash"),
		CreatedAt:    time.Now().UTC(),
	})
	assert.Nil(err)

	inner := &testService{}
	service := WithAuthentication[testInput, struct{}](
		account.NewFakeTokenVerifier(a.ID, true),
		repository,
		inner,
	)

	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, account.SessionToken("token"))
	_, err = service.Run(ctx, testInput{})

	assert.Nil(err)
	assert.Equal(a.ID, inner.LastInput.Account.ID)
}

func TestMissingTokenRejected(t *testing.T) {
	assert := require.New(t)
	service := WithAuthentication[testInput, struct{}](
		account.NewFakeTokenVerifier(account.ID(1), true),
		account.NewFakeRepository(),
		&testService{},
	)

	_, err := service.Run(context.Background(), testInput{})

	assert.True(errors.Is(err, account.ErrInvalidSessionToken))
}

func TestInvalidTokenRejected(t *testing.T) {
	assert := require.New(t)
	service := WithAuthentication[testInput, struct{}](
		account.NewFakeTokenVerifier(account.ID(1), false),
		account.NewFakeRepository(),
		&testService{},
	)

	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, account.SessionToken("token"))
	_, err := service.Run(ctx, testInput{})

	assert.True(errors.Is(err, account.ErrInvalidSessionToken))
}
