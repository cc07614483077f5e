package code

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	"userapp/internal/db"
)

const codeColumns = "code, account_id, purpose, created_at, expires_at"

type PgxRepository struct {
	conn db.Connection
}

func NewPgxRepository(conn db.Connection) *PgxRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxRepository{conn: conn}
}

func (r *PgxRepository) Create(ctx context.Context, input code.CreateCodeInput) (otc code.OneTimeCode, err error) {
	_, err = r.conn.Exec(
		ctx,
		`DELETE FROM one_time_code WHERE account_id = $1 AND purpose = $2`,
		int64(input.AccountID),
		string(input.Purpose),
	)
	if err != nil {
		return otc, err
	}
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO one_time_code (code, account_id, purpose, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+codeColumns,
		string(input.Code),
		int64(input.AccountID),
		string(input.Purpose),
		input.CreatedAt,
		input.ExpiresAt,
	)
	return scanCode(row)
}

func (r *PgxRepository) Redeem(ctx context.Context, c code.Code, purpose code.Purpose) (otc code.OneTimeCode, err error) {
	row := r.conn.QueryRow(
		ctx,
		`DELETE FROM one_time_code WHERE code = $1 AND purpose = $2 RETURNING `+codeColumns,
		string(c),
		string(purpose),
	)
	otc, err = scanCode(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return otc, code.ErrInvalidCode
	}
	return otc, err
}

func scanCode(row pgx.Row) (otc code.OneTimeCode, err error) {
	var (
		rawCode    string
		accountID  int64
		rawPurpose string
	)
	err = row.Scan(&rawCode, &accountID, &rawPurpose, &otc.CreatedAt, &otc.ExpiresAt)
	if err != nil {
		return otc, err
	}
	otc.Code = code.Code(rawCode)
	otc.AccountID = account.ID(accountID)
	otc.Purpose = code.Purpose(rawPurpose)
	return otc, nil
}
