package uow

import (
	"context"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Accounts() account.Repository
	Codes() code.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
