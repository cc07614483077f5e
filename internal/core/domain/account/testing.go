package account

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"

	c "userapp/internal/core/domain/common"
)

type FakeRepository struct {
	Accounts    []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Accounts {
		if a.Email == input.Email {
			return a, ErrEmailAlreadyExists
		}
		maxID = a.ID
	}
	a = Account{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Country:      input.Country,
		Image:        input.Image,
		CreatedAt:    input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeRepository) List(ctx context.Context) ([]Account, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list accounts")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	accounts := make([]Account, len(r.Accounts))
	copy(accounts, r.Accounts)
	return accounts, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) GetByEmail(ctx context.Context, email c.Email) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateAccountInput) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID != input.ID {
			continue
		}
		if input.DoFirstNameUpdate {
			r.Accounts[ix].FirstName = input.FirstName
		}
		if input.DoLastNameUpdate {
			r.Accounts[ix].LastName = input.LastName
		}
		if input.DoCountryUpdate {
			r.Accounts[ix].Country = input.Country
		}
		if input.DoImageUpdate {
			r.Accounts[ix].Image = input.Image
		}
		return r.Accounts[ix], nil
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) SetVerified(ctx context.Context, id ID, at time.Time) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id {
			r.Accounts[ix].VerifiedAt = c.NewOptional(at, true)
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id {
			r.Accounts[ix].PasswordHash = password
			return r.Accounts[ix], nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Accounts {
		if a.ID == id {
			r.Accounts = append(r.Accounts[:ix], r.Accounts[ix+1:]...)
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeTokenIssuer struct {
	Token       SessionToken
	Issued      []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeTokenIssuer(token string) *FakeTokenIssuer {
	return &FakeTokenIssuer{Token: SessionToken(token)}
}

func (i *FakeTokenIssuer) IssueToken(a Account, now time.Time) (SessionToken, error) {
	if i.ReturnError {
		return "", fmt.Errorf("could not issue session token for account %d", a.ID)
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	i.Issued = append(i.Issued, a)
	return i.Token, nil
}

type FakeTokenVerifier struct {
	AccountID ID
	IsValid   bool
}

func NewFakeTokenVerifier(accountID ID, isValid bool) *FakeTokenVerifier {
	return &FakeTokenVerifier{AccountID: accountID, IsValid: isValid}
}

func (v *FakeTokenVerifier) VerifyToken(token SessionToken) (ID, error) {
	if !v.IsValid {
		return 0, ErrInvalidSessionToken
	}
	return v.AccountID, nil
}

type FakeVerificationEmailSender struct {
	SentTo       []Account
	SentCodes    []string
	SentBaseURLs []string
	ReturnError  bool
	lock         sync.Mutex
}

func NewFakeVerificationEmailSender() *FakeVerificationEmailSender {
	return &FakeVerificationEmailSender{}
}

func (s *FakeVerificationEmailSender) SendVerificationCode(
	ctx context.Context,
	a Account,
	code string,
	frontBaseURL string,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send verification code for account %d", a.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, a)
	s.SentCodes = append(s.SentCodes, code)
	s.SentBaseURLs = append(s.SentBaseURLs, frontBaseURL)
	return nil
}

func (s *FakeVerificationEmailSender) SentCount() int {
	return len(s.SentTo)
}

func (s *FakeVerificationEmailSender) LastSentTo() Account {
	l := len(s.SentTo)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.SentTo[l-1]
}

type FakePasswordResetEmailSender struct {
	SentTo      []Account
	SentCodes   []string
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetEmailSender() *FakePasswordResetEmailSender {
	return &FakePasswordResetEmailSender{}
}

func (s *FakePasswordResetEmailSender) SendPasswordResetCode(
	ctx context.Context,
	a Account,
	code string,
	frontBaseURL string,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset code for account %d", a.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, a)
	s.SentCodes = append(s.SentCodes, code)
	return nil
}
