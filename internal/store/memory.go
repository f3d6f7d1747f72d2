package store

import (
	"context"
	"encoding/json"
)

// Memory is a Source backed by a slice loaded once at startup.
type Memory struct {
	records []json.RawMessage
}

// NewMemory wraps records. The slice must not be modified afterwards.
func NewMemory(records []json.RawMessage) *Memory {
	return &Memory{records: records}
}

// LoadJSONFile reads path once and serves it from memory.
func LoadJSONFile(path string) (*Memory, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewMemory(records), nil
}

// Total returns the number of records.
func (m *Memory) Total(context.Context) (int, error) {
	return len(m.records), nil
}

// Slice returns a clamped window of records.
func (m *Memory) Slice(_ context.Context, offset, limit int) ([]json.RawMessage, error) {
	start, end := Bounds(offset, limit, len(m.records))
	return m.records[start:end:end], nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
