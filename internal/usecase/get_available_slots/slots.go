package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateWindow генерирует доступные слоты на скользящее окно в 7 дней
// Дни без единого свободного слота в результат не попадают
// Результат детерминирован для фиксированных (now, booked)
func generateWindow(now time.Time, booked domain.SlotsBooked) []Day {
	days := make([]Day, 0, domain.BookingWindowDays)

	for offset := 0; offset < domain.BookingWindowDays; offset++ {
		date := now.AddDate(0, 0, offset)

		opening, ok := dayOpening(date, now, offset)
		if !ok {
			continue
		}

		slots := generateDaySlots(opening, booked)
		if len(slots) == 0 {
			continue
		}

		days = append(days, Day{
			Date:  types.NewSlotDate(date),
			Slots: slots,
		})
	}

	return days
}

// dayOpening вычисляет первый слот-кандидат для дня
// Для дня с offset 0 (сегодня):
//   - после 21:00 день пропускается целиком
//   - иначе первый кандидат max(10:00, округление now вверх до получаса)
//
// Для остальных дней окно всегда открывается в 10:00
func dayOpening(date time.Time, now time.Time, offset int) (time.Time, bool) {
	openAt := time.Date(date.Year(), date.Month(), date.Day(),
		domain.OpeningHour, 0, 0, 0, date.Location())

	if offset > 0 {
		return openAt, true
	}

	if now.Hour() >= domain.ClosingHour {
		return time.Time{}, false
	}

	snapped := snapUpToHalfHour(now)
	if snapped.After(openAt) {
		return snapped, true
	}
	return openAt, true
}

// snapUpToHalfHour огрубленно округляет момент времени вверх:
// минуты > 30 — до :00 следующего часа, иначе до :30 текущего часа
// Пациент не может забронировать слот внутри текущего получаса
func snapUpToHalfHour(now time.Time) time.Time {
	if now.Minute() > 30 {
		return time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 30, 0, 0, now.Location())
}

// generateDaySlots генерирует свободные слоты одного дня
// Кандидаты идут с шагом 30 минут от opening строго до 21:00,
// занятые (по реестру booked) отфильтровываются
func generateDaySlots(opening time.Time, booked domain.SlotsBooked) []Slot {
	closing := time.Date(opening.Year(), opening.Month(), opening.Day(),
		domain.ClosingHour, 0, 0, 0, opening.Location())

	slots := make([]Slot, 0)

	for current := opening; current.Before(closing); current = current.Add(domain.SlotDurationMinutes * time.Minute) {
		date := types.NewSlotDate(current)
		label := types.NewTimeLabel(current)

		if booked.Contains(date, label) {
			continue
		}

		slots = append(slots, Slot{
			StartsAt: current,
			Label:    label,
		})
	}

	return slots
}
