package service

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeTxDriver is a minimal database/sql driver that supports only
// transaction begin, commit and rollback. The stores are mocked in these
// tests, so no statement ever reaches the driver; it exists to let
// RunInTransaction manage a real *sql.Tx and to record the outcome.
type fakeTxDriver struct {
	commits   atomic.Int64
	rollbacks atomic.Int64
}

func (d *fakeTxDriver) Open(_ string) (driver.Conn, error) {
	return &fakeConn{driver: d}, nil
}

type fakeConn struct {
	driver *fakeTxDriver
}

func (c *fakeConn) Prepare(_ string) (driver.Stmt, error) {
	return nil, errors.New("fake driver does not support statements")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return &fakeTx{driver: c.driver}, nil
}

type fakeTx struct {
	driver *fakeTxDriver
}

func (tx *fakeTx) Commit() error {
	tx.driver.commits.Add(1)
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.driver.rollbacks.Add(1)
	return nil
}

var (
	registerMu sync.Mutex
	driverSeq  int
)

// newFakeDB opens a *sql.DB backed by a fresh fakeTxDriver and returns both.
func newFakeDB(t *testing.T) (*sql.DB, *fakeTxDriver) {
	t.Helper()

	d := &fakeTxDriver{}

	registerMu.Lock()
	driverSeq++
	name := fmt.Sprintf("faketx-%d", driverSeq)
	sql.Register(name, d)
	registerMu.Unlock()

	db, err := sql.Open(name, "")
	if err != nil {
		t.Fatalf("failed to open fake db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, d
}
