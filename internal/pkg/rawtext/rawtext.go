// Package rawtext decodes JSON values that may arrive as numbers or strings.
package rawtext

import (
	"bytes"
	"encoding/json"
)

// Value keeps the text of a JSON string or number. 500, 500.0 and "500" decode
// to "500", "500.0" and "500". null decodes to "". Other JSON types are rejected.
type Value string

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Value(n.String())
	return nil
}

// String returns the raw text.
func (v Value) String() string {
	return string(v)
}
