package code

import (
	"context"
	"fmt"
	"sync"
)

type FakeGenerator struct {
	Code Code
}

func NewFakeGenerator(c string) *FakeGenerator {
	return &FakeGenerator{Code: Code(c)}
}

func (g *FakeGenerator) GenerateCode() Code {
	return g.Code
}

type FakeRepository struct {
	Codes       []OneTimeCode
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Codes: make([]OneTimeCode, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateCodeInput) (c OneTimeCode, err error) {
	if r.ReturnError {
		return c, fmt.Errorf("could not create one-time code %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Codes[:0]
	for _, existing := range r.Codes {
		if existing.AccountID == input.AccountID && existing.Purpose == input.Purpose {
			continue
		}
		kept = append(kept, existing)
	}
	r.Codes = kept
	c = OneTimeCode{
		Code:      input.Code,
		AccountID: input.AccountID,
		Purpose:   input.Purpose,
		CreatedAt: input.CreatedAt,
		ExpiresAt: input.ExpiresAt,
	}
	r.Codes = append(r.Codes, c)
	return c, nil
}

func (r *FakeRepository) Redeem(ctx context.Context, c Code, purpose Purpose) (otc OneTimeCode, err error) {
	if r.ReturnError {
		return otc, fmt.Errorf("could not redeem one-time code")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Codes {
		if existing.Code == c && existing.Purpose == purpose {
			r.Codes = append(r.Codes[:ix], r.Codes[ix+1:]...)
			return existing, nil
		}
	}
	return otc, ErrInvalidCode
}
