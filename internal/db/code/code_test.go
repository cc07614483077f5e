package code

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	c "userapp/internal/core/domain/common"
	"userapp/internal/db"
	dbaccount "userapp/internal/db/account"
)

const CODE = "aaaa1111bbbb2222cccc3333dddd4444eeee5555ffff6666aaaa7777bbbb8888"

var NOW time.Time = time.Date(2023, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	repo      *PgxRepository
	accounts  *dbaccount.PgxRepository
	accountID account.ID
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
	suite.accounts = dbaccount.NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) SetupTest() {
	a, err := suite.accounts.Create(
		context.Background(),
		account.CreateAccountInput{
			Email:        c.NewEmail("test@test.test"),
			PasswordHash: account.PasswordHash("test-password-hash"),
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		suite.FailNowf("could not create account", "err: %v", err)
	}
	suite.accountID = a.ID
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxCodeRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateAndRedeem() {
	created, err := s.repo.Create(context.Background(), s.createInput(CODE, code.PurposeEmailVerification))
	s.Require().Nil(err)
	s.Equal(code.Code(CODE), created.Code)
	s.Equal(s.accountID, created.AccountID)

	redeemed, err := s.repo.Redeem(context.Background(), code.Code(CODE), code.PurposeEmailVerification)
	s.Nil(err)
	s.Equal(created.Code, redeemed.Code)
	s.Equal(created.AccountID, redeemed.AccountID)
	s.Equal(created.Purpose, redeemed.Purpose)
}

func (s *testSuite) TestRedeemIsSingleUse() {
	_, err := s.repo.Create(context.Background(), s.createInput(CODE, code.PurposeEmailVerification))
	s.Require().Nil(err)

	_, err = s.repo.Redeem(context.Background(), code.Code(CODE), code.PurposeEmailVerification)
	s.Nil(err)

	_, err = s.repo.Redeem(context.Background(), code.Code(CODE), code.PurposeEmailVerification)
	s.ErrorIs(err, code.ErrInvalidCode)
}

func (s *testSuite) TestRedeemChecksPurpose() {
	_, err := s.repo.Create(context.Background(), s.createInput(CODE, code.PurposeEmailVerification))
	s.Require().Nil(err)

	_, err = s.repo.Redeem(context.Background(), code.Code(CODE), code.PurposePasswordReset)
	s.ErrorIs(err, code.ErrInvalidCode)
}

func (s *testSuite) TestCreateSupersedesOutstandingCode() {
	_, err := s.repo.Create(context.Background(), s.createInput(CODE, code.PurposePasswordReset))
	s.Require().Nil(err)

	newCode := "9999" + CODE[4:]
	_, err = s.repo.Create(context.Background(), s.createInput(newCode, code.PurposePasswordReset))
	s.Require().Nil(err)

	_, err = s.repo.Redeem(context.Background(), code.Code(CODE), code.PurposePasswordReset)
	s.ErrorIs(err, code.ErrInvalidCode)

	_, err = s.repo.Redeem(context.Background(), code.Code(newCode), code.PurposePasswordReset)
	s.Nil(err)
}

func (s *testSuite) TestCreateKeepsCodesForOtherPurpose() {
	_, err := s.repo.Create(context.Background(), s.createInput(CODE, code.PurposeEmailVerification))
	s.Require().Nil(err)

	newCode := "9999" + CODE[4:]
	_, err = s.repo.Create(context.Background(), s.createInput(newCode, code.PurposePasswordReset))
	s.Require().Nil(err)

	_, err = s.repo.Redeem(context.Background(), code.Code(CODE), code.PurposeEmailVerification)
	s.Nil(err)
}

func (s *testSuite) createInput(rawCode string, purpose code.Purpose) code.CreateCodeInput {
	return code.CreateCodeInput{
		Code:      code.Code(rawCode),
		AccountID: s.accountID,
		Purpose:   purpose,
		CreatedAt: NOW,
		ExpiresAt: NOW.Add(24 * time.Hour),
	}
}
