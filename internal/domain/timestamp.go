package domain

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the fixed-width UTC form every record date is written in.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a record date. It marshals as TimestampLayout so stored and
// served dates always carry exactly three fractional digits.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to UTC at millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// String returns the date in TimestampLayout.
func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON accepts any RFC 3339 date, so hand-edited files with a
// different fraction width still load.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp: expected a JSON string, got %s", data)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = NewTimestamp(parsed)
	return nil
}
