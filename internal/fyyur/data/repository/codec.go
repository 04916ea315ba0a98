package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// List columns are stored as JSON text so both dialects share one schema.

func encodeList[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList[T any](column, raw string) ([]T, error) {
	out := []T{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", column, err)
	}
	return out, nil
}

// utc normalizes stored times so that text comparisons in SQLite order correctly.
func utc(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
