package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
)

// fakeQueryFunc serves a canned result for one query. Tests key off the
// query text to decide what each statement sees.
type fakeQueryFunc func(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error)

// openFakeDB returns a *sql.DB whose queries are answered by fn, so
// store behavior that depends on query timing and row counts can be
// exercised without a live database.
func openFakeDB(fn fakeQueryFunc) *sql.DB {
	return sql.OpenDB(&fakeConnector{fn: fn})
}

type fakeConnector struct {
	fn fakeQueryFunc
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{fn: c.fn}, nil
}

func (c *fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open via sql.OpenDB")
}

type fakeConn struct {
	fn fakeQueryFunc
}

var (
	_ driver.QueryerContext = (*fakeConn)(nil)
	_ driver.ExecerContext  = (*fakeConn)(nil)
)

func (c *fakeConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	return c.fn(ctx, query, args)
}

// ExecContext reports one affected row per canned row, so a statement
// answered with no rows reads as touching nothing.
func (c *fakeConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	rows, err := c.fn(ctx, query, args)
	if err != nil {
		return nil, err
	}
	var n int64
	if fr, ok := rows.(*fakeRows); ok {
		n = int64(len(fr.rows))
	}
	return driver.RowsAffected(n), nil
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements not supported")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

// fakeRows plays back fixed rows for a query.
type fakeRows struct {
	cols []string
	rows [][]driver.Value
	idx  int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}
