package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonb maps a Go value onto a JSONB column.
type jsonb[T any] struct {
	v *T
}

func jsonColumn[T any](v *T) jsonb[T] {
	return jsonb[T]{v: v}
}

func (j jsonb[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode jsonb: %w", err)
	}
	return b, nil
}

func (j jsonb[T]) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j.v)
	case string:
		return json.Unmarshal([]byte(v), j.v)
	default:
		return fmt.Errorf("cannot scan type %T into jsonb", value)
	}
}
