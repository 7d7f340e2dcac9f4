package apiclient

import (
	"bytes"
	"encoding/json"
)

// List decodes either a {"data": [...]} envelope or a bare JSON array.
type List[T any] struct {
	Items []T
}

func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &l.Items)
	}
	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	l.Items = env.Data
	return nil
}
