package uuidb64

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AppendText implements encoding.TextAppender.
func (u UUID) AppendText(b []byte) ([]byte, error) {
	return AppendEncode(b, u), nil
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return u.AppendText(make([]byte, 0, EncodedLen))
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the canonical text
// form is accepted.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalJSON encodes u as a JSON string holding the canonical text form.
func (u UUID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, EncodedLen+2)
	b = append(b, '"')
	b = AppendEncode(b, u)
	return append(b, '"'), nil
}

// UnmarshalJSON accepts a JSON string holding the canonical text form. JSON
// null leaves u unchanged.
func (u *UUID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] != '"' {
		return &ParseError{Text: string(data), Err: fmt.Errorf("expected JSON string")}
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return &ParseError{Text: string(data), Err: err}
	}
	return u.UnmarshalText([]byte(text))
}
