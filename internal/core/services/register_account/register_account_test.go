package registeraccount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	c "userapp/internal/core/domain/common"
	"userapp/internal/core/domain/logging"
	uow "userapp/internal/core/domain/unit_of_work"
	"userapp/internal/core/services"
)

const (
	CODE         = "aaaabbbbccccddddeeeeffff0000111122223333444455556666777788889999"
	EMAIL        = c.Email("test@test.test")
	RAW_PASSWORD = account.RawPassword("test-password")
	CODE_TTL     = 24 * time.Hour
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *account.FakePasswordHasher
	CodeGenerator  *code.FakeGenerator
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = account.NewFakePasswordHasher()
	suite.CodeGenerator = code.NewFakeGenerator(CODE)
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.CodeGenerator,
		CODE_TTL,
		func() time.Time { return NOW },
	)
}

func TestRegisterAccountService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(ctx, Input{
		Email:     EMAIL,
		Password:  RAW_PASSWORD,
		FirstName: "A",
		LastName:  "B",
		Country:   "US",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(account.ID(0), result.Account.ID)
	assert.Equal(EMAIL, result.Account.Email)
	assert.Equal(NOW, result.Account.CreatedAt)
	assert.NotEqual(account.PasswordHash(RAW_PASSWORD), result.Account.PasswordHash)
	assert.False(result.Account.IsVerified())
	assert.Equal(code.Code(CODE), result.Code.Code)
	assert.Equal(code.PurposeEmailVerification, result.Code.Purpose)
	assert.Equal(result.Account.ID, result.Code.AccountID)
	assert.Equal(NOW.Add(CODE_TTL), result.Code.ExpiresAt)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UnitOfWork.Context.AccountRepository.Create(ctx, account.CreateAccountInput{
		Email:        EMAIL,
		PasswordHash: account.PasswordHash("test"),
		CreatedAt:    NOW,
	})

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.True(errors.Is(err, account.ErrEmailAlreadyExists))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
}
