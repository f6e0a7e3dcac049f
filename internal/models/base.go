// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice is a JSON-encoded text column, used for field amenities.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = StringSlice{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("StringSlice: expected []byte or string, got %T", src)
	}
}

// Page normalizes 1-based pagination input.
func Page(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return (page - 1) * pageSize, pageSize
}
