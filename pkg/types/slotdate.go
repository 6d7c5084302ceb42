package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotDate is a calendar day key in the booked-slots registry.
// Wire format is "D_M_YYYY" without zero padding, month 1-indexed
// (for example "5_8_2025"). Stored in PostgreSQL as DATE.
type SlotDate string

// NewSlotDate builds a SlotDate from the calendar date of t.
func NewSlotDate(t time.Time) SlotDate {
	return SlotDate(fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year()))
}

// ParseSlotDate parses and validates a "D_M_YYYY" string.
// Parsing is strict: a malformed or non-existent date is an error,
// it never falls back to the current date.
func ParseSlotDate(s string) (SlotDate, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid slot date %q: expected D_M_YYYY", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("invalid slot date %q: bad day: %v", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid slot date %q: bad month: %v", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", fmt.Errorf("invalid slot date %q: bad year: %v", s, err)
	}

	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("invalid slot date %q: out of range", s)
	}

	// time.Date normalizes overflowing components (32_1_2025 becomes
	// February 1st), so reject anything that does not round-trip.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return "", fmt.Errorf("invalid slot date %q: no such calendar day", s)
	}

	return SlotDate(fmt.Sprintf("%d_%d_%d", day, month, year)), nil
}

// String returns the wire representation.
func (d SlotDate) String() string {
	return string(d)
}

// IsZero reports whether the value is empty.
func (d SlotDate) IsZero() bool {
	return d == ""
}

// Validate checks that the value holds a well-formed date key.
func (d SlotDate) Validate() error {
	_, err := ParseSlotDate(string(d))
	return err
}

// Time returns midnight of the slot date in the given location.
func (d SlotDate) Time(loc *time.Location) (time.Time, error) {
	parsed, err := ParseSlotDate(string(d))
	if err != nil {
		return time.Time{}, err
	}
	parts := strings.Split(string(parsed), "_")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// Value implements driver.Valuer, storing the key as a DATE.
func (d SlotDate) Value() (driver.Value, error) {
	t, err := d.Time(time.UTC)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Scan implements sql.Scanner, accepting DATE columns and strings.
func (d *SlotDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewSlotDate(v)
		return nil
	case string:
		parsed, err := ParseSlotDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseSlotDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into SlotDate", src)
	}
}
