package removeaccount

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	"userapp/internal/core/domain/logging"
	"userapp/internal/core/services"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	AccountRepository *account.FakeRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.AccountRepository = account.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.AccountRepository)
}

func TestRemoveAccountService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	a, err := suite.AccountRepository.Create(context.Background(), account.CreateAccountInput{
		Email:        c.Email("test@test.test"),
		PasswordHash: account.PasswordHash("hash"),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{AccountID: a.ID})

	suite.Require().Nil(err)
	suite.Len(suite.AccountRepository.Accounts, 0)
}

func (suite *testSuite) TestAccountDoesNotExistIsNotAnError() {
	_, err := suite.Service.Run(context.Background(), Input{AccountID: account.ID(999999)})

	suite.Require().Nil(err)
}

func (suite *testSuite) TestSecondRemovalSucceeds() {
	a, err := suite.AccountRepository.Create(context.Background(), account.CreateAccountInput{
		Email:        c.Email("test@test.test"),
		PasswordHash: account.PasswordHash("hash"),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{AccountID: a.ID})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{AccountID: a.ID})
	suite.Require().Nil(err)
}
