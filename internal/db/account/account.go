package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	"userapp/internal/db"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const accountColumns = "id, email, password_hash, first_name, last_name, country, image, created_at, verified_at"

type PgxRepository struct {
	conn db.Connection
}

func NewPgxRepository(conn db.Connection) *PgxRepository {
	if conn == nil {
		panic("Argument conn must not be nil.")
	}
	return &PgxRepository{conn: conn}
}

func (r *PgxRepository) Create(ctx context.Context, input account.CreateAccountInput) (a account.Account, err error) {
	row := r.conn.QueryRow(
		ctx,
		`INSERT INTO account (email, password_hash, first_name, last_name, country, image, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+accountColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.FirstName,
		input.LastName,
		input.Country,
		encodeOptionalString(input.Image),
		input.CreatedAt,
	)
	a, err = scanAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return a, account.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxRepository) List(ctx context.Context) ([]account.Account, error) {
	rows, err := r.conn.Query(
		ctx,
		`SELECT `+accountColumns+` FROM account ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]account.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PgxRepository) GetByID(ctx context.Context, id account.ID) (a account.Account, err error) {
	row := r.conn.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE id = $1`,
		int64(id),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxRepository) GetByEmail(ctx context.Context, email c.Email) (a account.Account, err error) {
	row := r.conn.QueryRow(
		ctx,
		`SELECT `+accountColumns+` FROM account WHERE email = $1`,
		string(email),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return a, err
	}
	return a, a.Validate()
}

func (r *PgxRepository) Update(ctx context.Context, input account.UpdateAccountInput) (a account.Account, err error) {
	assignments := make([]string, 0, 4)
	args := []interface{}{int64(input.ID)}

	appendAssignment := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if input.DoFirstNameUpdate {
		appendAssignment("first_name", input.FirstName)
	}
	if input.DoLastNameUpdate {
		appendAssignment("last_name", input.LastName)
	}
	if input.DoCountryUpdate {
		appendAssignment("country", input.Country)
	}
	if input.DoImageUpdate {
		appendAssignment("image", encodeOptionalString(input.Image))
	}
	if len(assignments) == 0 {
		return r.GetByID(ctx, input.ID)
	}

	row := r.conn.QueryRow(
		ctx,
		fmt.Sprintf(
			`UPDATE account SET %s WHERE id = $1 RETURNING %s`,
			strings.Join(assignments, ", "),
			accountColumns,
		),
		args...,
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func (r *PgxRepository) SetVerified(ctx context.Context, id account.ID, at time.Time) (a account.Account, err error) {
	row := r.conn.QueryRow(
		ctx,
		`UPDATE account SET verified_at = $2 WHERE id = $1 RETURNING `+accountColumns,
		int64(id),
		at,
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func (r *PgxRepository) SetPassword(ctx context.Context, id account.ID, password account.PasswordHash) (a account.Account, err error) {
	row := r.conn.QueryRow(
		ctx,
		`UPDATE account SET password_hash = $2 WHERE id = $1 RETURNING `+accountColumns,
		int64(id),
		string(password),
	)
	a, err = scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, account.ErrAccountDoesNotExist
	}
	return a, err
}

func (r *PgxRepository) Delete(ctx context.Context, id account.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM account WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountDoesNotExist
	}
	return nil
}

func scanAccount(row pgx.Row) (a account.Account, err error) {
	var (
		id           int64
		email        string
		passwordHash string
		image        sql.NullString
		verifiedAt   sql.NullTime
	)
	err = row.Scan(
		&id,
		&email,
		&passwordHash,
		&a.FirstName,
		&a.LastName,
		&a.Country,
		&image,
		&a.CreatedAt,
		&verifiedAt,
	)
	if err != nil {
		return a, err
	}
	a.ID = account.ID(id)
	a.Email = c.Email(email)
	a.PasswordHash = account.PasswordHash(passwordHash)
	a.Image = c.NewOptional(image.String, image.Valid)
	a.VerifiedAt = c.NewOptional(verifiedAt.Time, verifiedAt.Valid)
	return a, nil
}

func encodeOptionalString(s c.Optional[string]) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.IsPresent}
}
