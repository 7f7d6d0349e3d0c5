package xpgtype

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

var (
	_ sql.Scanner   = (*JSON[any])(nil)
	_ driver.Valuer = (*JSON[any])(nil)
)

// JSON stores V in a JSONB column.
type JSON[T any] struct {
	V T
}

func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{V: v}
}

func (j JSON[T]) Value() (driver.Value, error) {
	return json.Marshal(j.V)
}

func (j *JSON[T]) Scan(src any) error {
	switch src := src.(type) {
	case []byte:
		return json.Unmarshal(src, &j.V)
	case string:
		return json.Unmarshal([]byte(src), &j.V)
	default:
		return fmt.Errorf("cannot scan %T into JSON", src)
	}
}
