package user

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234567890", "+1-123-456-7890"},
		{"12345", "12345"},
		{"(123) 456-7890", "+1-123-456-7890"},
		{"1-770-736-8031 x56442", "+1-177-073-6803"},
		{"phone: n/a", "phone: n/a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatPhone(tt.in); got != tt.want {
				t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
	}{
		{
			name:    "complete record",
			payload: `{"name":"Leanne","email":"l@x.io","phone":"770.736.8031","address":{"city":"Gwenborough"},"company":{"name":"Romaguera"}}`,
			want:    []string{"Leanne", "l@x.io", "+1-770-736-8031", "Romaguera (Gwenborough)"},
		},
		{
			name:    "missing fields",
			payload: `{}`,
			want:    []string{"N/A", "N/A", "N/A", "Unknown Company (Unknown City)"},
		},
		{
			name:    "empty name is shown as is",
			payload: `{"name":"","email":"e@x","phone":"","company":{"name":"Acme"}}`,
			want:    []string{"", "e@x", "N/A", "Acme (Unknown City)"},
		},
		{
			name:    "short phone",
			payload: `{"name":"A","phone":"555-1234"}`,
			want:    []string{"A", "N/A", "555-1234", "Unknown Company (Unknown City)"},
		},
		{
			name:    "numeric phone",
			payload: `{"name":"A","phone":5551234}`,
			want:    []string{"A", "N/A", "5551234", "Unknown Company (Unknown City)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			if err := json.Unmarshal([]byte(tt.payload), &r); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := Columns(r); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Columns() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextRoundTripKeepsRawValues(t *testing.T) {
	in := `{"id":7,"name":"Jo","email":null}`
	var r Record
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID.IsString() || r.ID.String() != "7" {
		t.Errorf("id = %+v, want raw 7", r.ID)
	}
	if r.Email.IsSet() {
		t.Error("null email should be absent")
	}
	b, err := json.Marshal(r.ID)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "7" {
		t.Errorf("marshal id = %s", b)
	}
}
