package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// timeLabelLayout is the 12-hour clock layout used as the slot
// identifier within a date key, e.g. "10:30 am", "2:00 pm".
const timeLabelLayout = "3:04 pm"

// TimeLabel is a human-readable slot time within a day.
type TimeLabel string

// NewTimeLabel formats the clock time of t as a label.
func NewTimeLabel(t time.Time) TimeLabel {
	return TimeLabel(t.Format(timeLabelLayout))
}

// ParseTimeLabel parses and normalizes an "h:mm am/pm" string.
func ParseTimeLabel(s string) (TimeLabel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	t, err := time.Parse(timeLabelLayout, normalized)
	if err != nil {
		return "", fmt.Errorf("invalid time label %q: expected h:mm am/pm", s)
	}
	return NewTimeLabel(t), nil
}

// String returns the wire representation.
func (l TimeLabel) String() string {
	return string(l)
}

// IsZero reports whether the value is empty.
func (l TimeLabel) IsZero() bool {
	return l == ""
}

// Validate checks that the value holds a well-formed label.
func (l TimeLabel) Validate() error {
	_, err := ParseTimeLabel(string(l))
	return err
}

// Clock returns the 24-hour clock components of the label.
func (l TimeLabel) Clock() (hour, minute int, err error) {
	t, err := time.Parse(timeLabelLayout, string(l))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time label %q: %v", string(l), err)
	}
	return t.Hour(), t.Minute(), nil
}

// At places the label on the calendar day of date in date's location.
func (l TimeLabel) At(date time.Time) (time.Time, error) {
	hour, minute, err := l.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// Value implements driver.Valuer.
func (l TimeLabel) Value() (driver.Value, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return string(l), nil
}

// Scan implements sql.Scanner.
func (l *TimeLabel) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseTimeLabel(v)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeLabel(string(v))
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	case nil:
		*l = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeLabel", src)
	}
}
