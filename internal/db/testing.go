package db

import (
	"context"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
)

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	if err := Migrate(connString); err != nil {
		panic(err)
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE account CASCADE")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
