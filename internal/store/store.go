// Package store provides the read-only record sources the data source serves.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotArray is returned when a records file does not hold a JSON array.
var ErrNotArray = errors.New("records file must contain a JSON array")

// Source is an ordered, read-only collection of records. Records are kept as
// raw JSON and served exactly as stored.
type Source interface {
	// Total returns the number of records.
	Total(ctx context.Context) (int, error)

	// Slice returns records[offset:offset+limit], clamped to the available range.
	Slice(ctx context.Context, offset, limit int) ([]json.RawMessage, error)

	// Close releases any resources held by the source.
	Close() error
}

// Offset returns the index of the first record of a 1-based page, capped at
// total so that huge page numbers cannot overflow.
func Offset(page, limit, total int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > total/limit {
		return total
	}
	return min((page-1)*limit, total)
}

// Bounds clamps [offset, offset+limit) to [0, total).
func Bounds(offset, limit, total int) (start, end int) {
	start = min(max(offset, 0), total)
	if limit < 1 {
		return start, start
	}
	end = total
	if limit < total-start {
		end = start + limit
	}
	return start, end
}

// ReadRecords decodes a JSON array of records without interpreting them.
func ReadRecords(r io.Reader) ([]json.RawMessage, error) {
	var records []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	if records == nil {
		return nil, ErrNotArray
	}
	return records, nil
}

// ReadFile reads a JSON array of records from path.
func ReadFile(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening records file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}
