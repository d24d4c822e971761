package timex

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// layouts the API is known to emit. The backend serializes naive datetimes
// (no zone), so those are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a point in time decoded from the API. JSON null and "" decode
// to the zero value.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses s with the first matching layout.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unsupported timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format("2006-01-02T15:04:05") + `"`), nil
}

// DisplayDate renders the date as dd/mm/yyyy, or "-" when unset.
func (t Timestamp) DisplayDate() string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
