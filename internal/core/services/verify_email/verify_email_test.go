package verifyemail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	c "userapp/internal/core/domain/common"
	"userapp/internal/core/domain/events"
	"userapp/internal/core/domain/logging"
	uow "userapp/internal/core/domain/unit_of_work"
	"userapp/internal/core/services"
)

const CODE = code.Code("aaaabbbbccccddddeeeeffff0000111122223333444455556666777788889999")

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	EventPublisher *events.FakePublisher
	Service        services.Service[Input, Result]
	Account        account.Account
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.EventPublisher = events.NewFakePublisher()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.EventPublisher,
		func() time.Time { return NOW },
	)

	ctx := context.Background()
	a, err := suite.UnitOfWork.Context.AccountRepository.Create(ctx, account.CreateAccountInput{
		Email:        c.Email("test@test.test"),
		PasswordHash: account.PasswordHash("hash"),
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	suite.Account = a
}

func TestVerifyEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createCode(expiresAt time.Time) {
	_, err := suite.UnitOfWork.Context.CodeRepository.Create(context.Background(), code.CreateCodeInput{
		Code:      CODE,
		AccountID: suite.Account.ID,
		Purpose:   code.PurposeEmailVerification,
		CreatedAt: NOW,
		ExpiresAt: expiresAt,
	})
	suite.Require().Nil(err)
}

func (suite *testSuite) TestSuccess() {
	suite.createCode(NOW.Add(time.Hour))

	result, err := suite.Service.Run(context.Background(), Input{Code: CODE})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(suite.Account.ID, result.Account.ID)
	assert.True(result.Account.IsVerified())
	assert.Equal(NOW, result.Account.VerifiedAt.Value)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
	assert.Len(suite.UnitOfWork.Context.CodeRepository.Codes, 0)
	assert.Len(suite.EventPublisher.Published, 1)
	assert.Equal(events.AccountVerified, suite.EventPublisher.Published[0].Type)
}

func (suite *testSuite) TestUnknownCode() {
	suite.createCode(NOW.Add(time.Hour))

	_, err := suite.Service.Run(context.Background(), Input{Code: code.Code("other")})

	assert := suite.Require()
	assert.True(errors.Is(err, code.ErrInvalidCode))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestSecondRedemptionFails() {
	suite.createCode(NOW.Add(time.Hour))

	_, err := suite.Service.Run(context.Background(), Input{Code: CODE})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{Code: CODE})
	suite.Require().True(errors.Is(err, code.ErrInvalidCode))
}

func (suite *testSuite) TestExpiredCode() {
	suite.createCode(NOW.Add(-time.Minute))

	_, err := suite.Service.Run(context.Background(), Input{Code: CODE})

	assert := suite.Require()
	assert.True(errors.Is(err, code.ErrInvalidCode))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.Len(suite.EventPublisher.Published, 0)
}

func (suite *testSuite) TestPasswordResetCodeDoesNotVerify() {
	_, err := suite.UnitOfWork.Context.CodeRepository.Create(context.Background(), code.CreateCodeInput{
		Code:      CODE,
		AccountID: suite.Account.ID,
		Purpose:   code.PurposePasswordReset,
		CreatedAt: NOW,
		ExpiresAt: NOW.Add(time.Hour),
	})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{Code: CODE})

	suite.Require().True(errors.Is(err, code.ErrInvalidCode))
}
