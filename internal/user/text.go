// Package user defines the user record served by the data source and the
// pure helpers the table uses to validate and display it.
package user

import (
	"bytes"
	"encoding/json"
)

type textKind uint8

const (
	textAbsent textKind = iota
	textString
	textOther
)

// Text is a record field that may be missing, a JSON string, or some other
// JSON value (number, bool, object, array). Non-string values keep their raw
// JSON text so they can still be displayed.
type Text struct {
	raw  string
	kind textKind
}

// String returns a Text holding the string s.
func String(s string) Text {
	return Text{raw: s, kind: textString}
}

// Raw returns a Text holding a non-string JSON value such as 42 or true.
func Raw(v string) Text {
	return Text{raw: v, kind: textOther}
}

// IsSet reports whether the field was present and not null.
func (t Text) IsSet() bool {
	return t.kind != textAbsent
}

// IsString reports whether the field holds a JSON string.
func (t Text) IsString() bool {
	return t.kind == textString
}

// Valid reports whether the field holds a non-empty string.
func (t Text) Valid() bool {
	return t.kind == textString && t.raw != ""
}

// String returns the string value, or the raw JSON text for non-string values.
func (t Text) String() string {
	return t.raw
}

// Display returns fallback when the field is absent and its text otherwise.
func (t Text) Display(fallback string) string {
	if t.kind == textAbsent {
		return fallback
	}
	return t.raw
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Text{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = String(s)
		return nil
	}
	*t = Raw(string(data))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case textString:
		return json.Marshal(t.raw)
	case textOther:
		return []byte(t.raw), nil
	default:
		return []byte("null"), nil
	}
}
