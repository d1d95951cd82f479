// Package store describes the row-oriented record store the ledger and the user
// directory are kept in. Tables have a header row; data rows start right below it.
package store

import (
	"context"
	"strings"
)

// HeaderRow is the sheet row holding column names.
const HeaderRow = 1

// Layouts of time values kept in text cells. Times are UTC.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// Match selects how FindByKey compares a cell with the key. Both sides are trimmed.
type Match int

const (
	MatchExact Match = iota
	MatchFold
)

func (m Match) Equal(cell, key string) bool {
	cell, key = strings.TrimSpace(cell), strings.TrimSpace(key)
	if m == MatchFold {
		return strings.EqualFold(cell, key)
	}
	return cell == key
}

type Record struct {
	// Row is the 1-based row number the record was read from.
	Row    int
	Fields map[string]string
}

// Get returns the trimmed value of a column, "" if the column is missing.
func (r *Record) Get(column string) string {
	return strings.TrimSpace(r.Fields[column])
}

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store
type RecordStore interface {
	// FindByKey returns the first record whose column matches key, or nil when there is none.
	FindByKey(ctx context.Context, table, column, key string, match Match) (*Record, error)
	AppendRow(ctx context.Context, table string, values []any) error
	// UpdateRange writes values into row starting at column (a sheet column letter).
	UpdateRange(ctx context.Context, table string, row int, column string, values []any) error
	Ping(ctx context.Context, table string) error
}
