package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestGenerateWindow(t *testing.T) {
	t.Run("early morning gives full day from opening", func(t *testing.T) {
		// 09:00 — клиника еще закрыта, первый слот в 10:00
		now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.Len(t, days, domain.BookingWindowDays)
		assert.Equal(t, types.SlotDate("5_8_2025"), days[0].Date)
		assert.Len(t, days[0].Slots, 22)
		assert.Equal(t, types.TimeLabel("10:00 am"), days[0].Slots[0].Label)
		assert.Equal(t, types.TimeLabel("8:30 pm"), days[0].Slots[21].Label)
	})

	t.Run("midday snaps up to next half hour", func(t *testing.T) {
		// 13:10 — первый слот в 13:30
		now := time.Date(2025, time.August, 5, 13, 10, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.NotEmpty(t, days)
		assert.Len(t, days[0].Slots, 15)
		assert.Equal(t, types.TimeLabel("1:30 pm"), days[0].Slots[0].Label)
	})

	t.Run("past half hour snaps up to next full hour", func(t *testing.T) {
		// 13:35 — первый слот в 14:00
		now := time.Date(2025, time.August, 5, 13, 35, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.NotEmpty(t, days)
		assert.Len(t, days[0].Slots, 14)
		assert.Equal(t, types.TimeLabel("2:00 pm"), days[0].Slots[0].Label)
	})

	t.Run("late evening drops today entirely", func(t *testing.T) {
		// 20:45 — ближайшая граница 21:00, сегодня слотов нет
		now := time.Date(2025, time.August, 5, 20, 45, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.Len(t, days, domain.BookingWindowDays-1)
		assert.Equal(t, types.SlotDate("6_8_2025"), days[0].Date)
	})

	t.Run("after closing drops today entirely", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 22, 15, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.Len(t, days, domain.BookingWindowDays-1)
		assert.Equal(t, types.SlotDate("6_8_2025"), days[0].Date)
	})

	t.Run("last slot of today is still bookable", func(t *testing.T) {
		// 20:30 — остается ровно один слот 20:30
		now := time.Date(2025, time.August, 5, 20, 30, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.Len(t, days, domain.BookingWindowDays)
		require.Len(t, days[0].Slots, 1)
		assert.Equal(t, types.TimeLabel("8:30 pm"), days[0].Slots[0].Label)
	})

	t.Run("future days always open at ten", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 18, 0, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.Len(t, days, domain.BookingWindowDays)
		for _, day := range days[1:] {
			assert.Len(t, day.Slots, 22)
			assert.Equal(t, types.TimeLabel("10:00 am"), day.Slots[0].Label)
			assert.Equal(t, types.TimeLabel("8:30 pm"), day.Slots[len(day.Slots)-1].Label)
		}
	})

	t.Run("booked slots are filtered out", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC)
		booked := domain.SlotsBooked{
			"5_8_2025": {"10:00 am", "2:30 pm"},
		}

		days := generateWindow(now, booked)

		require.NotEmpty(t, days)
		assert.Len(t, days[0].Slots, 20)
		for _, slot := range days[0].Slots {
			assert.NotEqual(t, types.TimeLabel("10:00 am"), slot.Label)
			assert.NotEqual(t, types.TimeLabel("2:30 pm"), slot.Label)
		}
	})

	t.Run("fully booked day is omitted", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC)

		// Занимаем все 22 слота следующего дня
		allSlots := make([]types.TimeLabel, 0, 22)
		day := time.Date(2025, time.August, 6, 10, 0, 0, 0, time.UTC)
		for i := 0; i < 22; i++ {
			allSlots = append(allSlots, types.NewTimeLabel(day.Add(time.Duration(i)*30*time.Minute)))
		}
		booked := domain.SlotsBooked{"6_8_2025": allSlots}

		days := generateWindow(now, booked)

		require.Len(t, days, domain.BookingWindowDays-1)
		for _, d := range days {
			assert.NotEqual(t, types.SlotDate("6_8_2025"), d.Date)
		}
	})

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 11, 17, 0, 0, time.UTC)
		booked := domain.SlotsBooked{
			"5_8_2025": {"12:00 pm"},
			"7_8_2025": {"10:00 am", "10:30 am"},
		}

		first := generateWindow(now, booked)
		second := generateWindow(now, booked)

		assert.Equal(t, first, second)
	})

	t.Run("slot instants carry the correct clock time", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.UTC)

		days := generateWindow(now, domain.SlotsBooked{})

		require.NotEmpty(t, days)
		firstSlot := days[0].Slots[0]
		assert.Equal(t, time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC), firstSlot.StartsAt)
	})
}

func TestSnapUpToHalfHour(t *testing.T) {
	t.Run("on the hour snaps to half past", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 13, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.August, 5, 13, 30, 0, 0, time.UTC), snapUpToHalfHour(now))
	})

	t.Run("before half past snaps to half past", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 13, 29, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.August, 5, 13, 30, 0, 0, time.UTC), snapUpToHalfHour(now))
	})

	t.Run("exactly half past stays at half past", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 13, 30, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.August, 5, 13, 30, 0, 0, time.UTC), snapUpToHalfHour(now))
	})

	t.Run("after half past snaps to next hour", func(t *testing.T) {
		now := time.Date(2025, time.August, 5, 13, 31, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2025, time.August, 5, 14, 0, 0, 0, time.UTC), snapUpToHalfHour(now))
	})
}
