// Package dbtest provides a database handle whose transactions are
// no-ops, for exercising transactional service paths against repo
// mocks without a running database.
package dbtest

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
)

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("dbtest: statements not supported") }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

func (stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return stubTx{}, nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func init() { sql.Register("dbtest", stubDriver{}) }

func New(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("dbtest", "")
	if err != nil {
		t.Fatalf("open stub db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
