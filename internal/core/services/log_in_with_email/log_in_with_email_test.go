package loginwithemail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

const (
	EMAIL         = c.Email("test@test.test")
	RAW_PASSWORD  = account.RawPassword("test-password")
	SESSION_TOKEN = "test-session-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	AccountRepository *account.FakeRepository
	PasswordHasher    *account.FakePasswordHasher
	TokenIssuer       *account.FakeTokenIssuer
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.AccountRepository = account.NewFakeRepository()
	suite.PasswordHasher = account.NewFakePasswordHasher()
	suite.TokenIssuer = account.NewFakeTokenIssuer(SESSION_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.AccountRepository,
		suite.PasswordHasher,
		suite.TokenIssuer,
		func() time.Time { return NOW },
	)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createAccount(verified bool) account.Account {
	ctx := context.Background()
	hash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	a, err := suite.AccountRepository.Create(ctx, account.CreateAccountInput{
		Email:        EMAIL,
		PasswordHash: hash,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	if verified {
		a, err = suite.AccountRepository.SetVerified(ctx, a.ID, NOW)
		suite.Require().Nil(err)
	}
	return a
}

func (suite *testSuite) TestSuccess() {
	a := suite.createAccount(true)

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(a.ID, result.Account.ID)
	assert.Equal(account.SessionToken(SESSION_TOKEN), result.Token)
	assert.Len(suite.TokenIssuer.Issued, 1)
	assert.Equal(a.ID, suite.TokenIssuer.Issued[0].ID)
}

func (suite *testSuite) TestUnknownEmail() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().True(errors.Is(err, account.ErrInvalidCredentials))
}

func (suite *testSuite) TestInvalidPassword() {
	suite.createAccount(true)

	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: account.RawPassword("wrong")},
	)

	suite.Require().True(errors.Is(err, account.ErrInvalidCredentials))
	suite.Require().Len(suite.TokenIssuer.Issued, 0)
}

func (suite *testSuite) TestNotVerified() {
	suite.createAccount(false)

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().True(errors.Is(err, account.ErrAccountNotVerified))
}

func (suite *testSuite) TestNotVerifiedWithWrongPasswordReportsInvalidCredentials() {
	suite.createAccount(false)

	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: account.RawPassword("wrong")},
	)

	suite.Require().True(errors.Is(err, account.ErrInvalidCredentials))
}
