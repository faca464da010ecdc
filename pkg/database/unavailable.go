package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unavailable returns a PgxIface whose every call fails with the given
// reason. It is wired when the store credentials are missing or the initial
// connection fails, so requests answer a clear 500 instead of the process
// crashing at startup.
func Unavailable(reason error) PgxIface {
	return &unavailableDB{err: fmt.Errorf("store misconfigured: %w", reason)}
}

type unavailableDB struct {
	err error
}

func (u *unavailableDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, u.err
}

func (u *unavailableDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return unavailableRow{err: u.err}
}

func (u *unavailableDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, u.err
}

func (u *unavailableDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, u.err
}

func (u *unavailableDB) Ping(ctx context.Context) error {
	return u.err
}

func (u *unavailableDB) Close() {}

type unavailableRow struct {
	err error
}

func (r unavailableRow) Scan(dest ...any) error {
	return r.err
}
