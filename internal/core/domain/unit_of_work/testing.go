package uow

import (
	"context"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
)

type FakeUnitOfWorkContext struct {
	AccountRepository *account.FakeRepository
	CodeRepository    *code.FakeRepository
	WasRollbackCalled bool
	WasCommitCalled   bool
}

func NewFakeUnitOfWorkContext(
	accountRepository *account.FakeRepository,
	codeRepository *code.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		AccountRepository: accountRepository,
		CodeRepository:    codeRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Accounts() account.Repository {
	return c.AccountRepository
}

func (c *FakeUnitOfWorkContext) Codes() code.Repository {
	return c.CodeRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			account.NewFakeRepository(),
			code.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
