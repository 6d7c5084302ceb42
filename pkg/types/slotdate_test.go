package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlotDate(t *testing.T) {
	t.Run("no zero padding", func(t *testing.T) {
		d := NewSlotDate(time.Date(2025, time.August, 5, 14, 30, 0, 0, time.UTC))
		assert.Equal(t, SlotDate("5_8_2025"), d)
	})

	t.Run("double digit day and month", func(t *testing.T) {
		d := NewSlotDate(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, SlotDate("31_12_2025"), d)
	})
}

func TestParseSlotDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := ParseSlotDate("5_8_2025")
		require.NoError(t, err)
		assert.Equal(t, SlotDate("5_8_2025"), d)
	})

	t.Run("rejects wrong part count", func(t *testing.T) {
		_, err := ParseSlotDate("5_8")
		assert.Error(t, err)

		_, err = ParseSlotDate("5_8_2025_1")
		assert.Error(t, err)
	})

	t.Run("rejects non-numeric parts", func(t *testing.T) {
		_, err := ParseSlotDate("five_8_2025")
		assert.Error(t, err)
	})

	t.Run("rejects out of range components", func(t *testing.T) {
		_, err := ParseSlotDate("0_8_2025")
		assert.Error(t, err)

		_, err = ParseSlotDate("5_13_2025")
		assert.Error(t, err)

		_, err = ParseSlotDate("32_8_2025")
		assert.Error(t, err)
	})

	t.Run("rejects non-existent calendar day", func(t *testing.T) {
		// time.Date would normalize this to March 2nd
		_, err := ParseSlotDate("30_2_2025")
		assert.Error(t, err)
	})

	t.Run("accepts leap day on leap year only", func(t *testing.T) {
		_, err := ParseSlotDate("29_2_2024")
		assert.NoError(t, err)

		_, err = ParseSlotDate("29_2_2025")
		assert.Error(t, err)
	})
}

func TestSlotDateTime(t *testing.T) {
	d := SlotDate("5_8_2025")

	parsed, err := d.Time(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC), parsed)
}

func TestSlotDateScan(t *testing.T) {
	t.Run("from time.Time", func(t *testing.T) {
		var d SlotDate
		err := d.Scan(time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, SlotDate("5_8_2025"), d)
	})

	t.Run("from string", func(t *testing.T) {
		var d SlotDate
		err := d.Scan("5_8_2025")
		require.NoError(t, err)
		assert.Equal(t, SlotDate("5_8_2025"), d)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var d SlotDate
		assert.Error(t, d.Scan(42))
	})
}

func TestSlotDateValue(t *testing.T) {
	t.Run("valid date becomes time.Time", func(t *testing.T) {
		v, err := SlotDate("5_8_2025").Value()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC), v)
	})

	t.Run("malformed date is an error", func(t *testing.T) {
		_, err := SlotDate("garbage").Value()
		assert.Error(t, err)
	})
}
