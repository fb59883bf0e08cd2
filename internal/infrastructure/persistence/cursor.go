package persistence

import (
	"database/sql"

	"gorm.io/gorm"
)

// rowCursor adapts sql.Rows from a GORM query to shared.Cursor. M is the
// persistence model scanned per row, T the domain entity handed to callers.
type rowCursor[M any, T any] struct {
	db       *gorm.DB
	rows     *sql.Rows
	toDomain func(*M) *T
	err      error
}

func newRowCursor[M any, T any](db *gorm.DB, rows *sql.Rows, toDomain func(*M) *T) *rowCursor[M, T] {
	return &rowCursor[M, T]{db: db, rows: rows, toDomain: toDomain}
}

func (c *rowCursor[M, T]) Next() bool {
	if c.err != nil {
		return false
	}
	return c.rows.Next()
}

func (c *rowCursor[M, T]) Value() (*T, error) {
	var model M
	if err := c.db.ScanRows(c.rows, &model); err != nil {
		c.err = err
		return nil, err
	}
	return c.toDomain(&model), nil
}

func (c *rowCursor[M, T]) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

// Close releases the underlying rows and their connection. sql.Rows makes
// this safe to call more than once and mid-traversal.
func (c *rowCursor[M, T]) Close() error {
	return c.rows.Close()
}
