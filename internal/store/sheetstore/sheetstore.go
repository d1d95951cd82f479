// Package sheetstore keeps records in tabs of a Google spreadsheet.
package sheetstore

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/GlebRadaev/topups/internal/store"
)

const (
	// cells come back as numbers and booleans instead of their display strings
	renderUnformatted = "UNFORMATTED_VALUE"
	renderDates       = "FORMATTED_STRING"
	// written values are stored as-is, user supplied text is never parsed as a formula
	inputRaw   = "RAW"
	insertRows = "INSERT_ROWS"
)

type Store struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewService builds a Sheets client on top of an already authorised HTTP client.
func NewService(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*sheets.Service, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return srv, nil
}

func New(srv *sheets.Service, spreadsheetID string) *Store {
	return &Store{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
	}
}

func (s *Store) FindByKey(ctx context.Context, table, column, key string, match store.Match) (*store.Record, error) {
	resp, err := s.values.Get(s.spreadsheetID, a1(table, "")).
		ValueRenderOption(renderUnformatted).
		DateTimeRenderOption(renderDates).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	if len(resp.Values) <= store.HeaderRow {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = strings.TrimSpace(cellString(cell))
	}

	for i, row := range resp.Values[store.HeaderRow:] {
		rec := &store.Record{
			Row:    i + store.HeaderRow + 1,
			Fields: make(map[string]string, len(header)),
		}
		for j, name := range header {
			if name == "" {
				continue
			}
			if j < len(row) {
				rec.Fields[name] = cellString(row[j])
			} else {
				rec.Fields[name] = ""
			}
		}
		if match.Equal(rec.Fields[column], key) {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *Store) AppendRow(ctx context.Context, table string, values []any) error {
	vr := &sheets.ValueRange{Values: [][]any{values}}
	_, err := s.values.Append(s.spreadsheetID, a1(table, "A1"), vr).
		ValueInputOption(inputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", table, err)
	}
	return nil
}

func (s *Store) UpdateRange(ctx context.Context, table string, row int, column string, values []any) error {
	if row <= store.HeaderRow {
		return fmt.Errorf("update %s: row %d is not a data row", table, row)
	}
	cell := column + strconv.Itoa(row)
	vr := &sheets.ValueRange{Values: [][]any{values}}
	_, err := s.values.Update(s.spreadsheetID, a1(table, cell), vr).
		ValueInputOption(inputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s!%s: %w", table, cell, err)
	}
	return nil
}

// Ping reads the header row of table.
func (s *Store) Ping(ctx context.Context, table string) error {
	_, err := s.values.Get(s.spreadsheetID, a1(table, "1:1")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("ping %s: %w", table, err)
	}
	return nil
}

func a1(table, cells string) string {
	name := "'" + strings.ReplaceAll(table, "'", "''") + "'"
	if cells == "" {
		return name
	}
	return name + "!" + cells
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		if c {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(c)
	}
}
