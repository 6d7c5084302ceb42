package book_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Парсинг даты строгий: некорректный date-key — это ошибка,
// а не молчаливый откат к текущей дате
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.SlotDate.IsZero() {
		return fmt.Errorf("%w: slotDate is required", ErrInvalidInput)
	}

	if err := req.SlotDate.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slotDate format: %v", ErrInvalidInput, err)
	}

	if req.SlotTime.IsZero() {
		return fmt.Errorf("%w: slotTime is required", ErrInvalidInput)
	}

	if err := req.SlotTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slotTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSlot проверяет, что слот попадает в сетку клиники
// и в актуальное окно бронирования
func validateSlot(slotDate types.SlotDate, slotTime types.TimeLabel, now time.Time) error {
	day, err := slotDate.Time(now.Location())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Дата не в прошлом
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return ErrInvalidDate
	}

	// Дата внутри скользящего окна
	maxDay := today.AddDate(0, 0, domain.BookingWindowDays-1)
	if day.After(maxDay) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.BookingWindowDays)
	}

	hour, minute, err := slotTime.Clock()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Слот на получасовой сетке внутри рабочих часов клиники
	if minute != 0 && minute != 30 {
		return fmt.Errorf("%w: slot must start at :00 or :30", ErrInvalidTimeSlot)
	}
	if hour < domain.OpeningHour || hour >= domain.ClosingHour {
		return fmt.Errorf("%w: slot must be between %d:00 and %d:00", ErrInvalidTimeSlot,
			domain.OpeningHour, domain.ClosingHour)
	}

	// Для сегодняшнего дня слот должен быть не раньше ближайшей
	// доступной границы (та же логика, что в генераторе слотов)
	if day.Equal(today) {
		if now.Hour() >= domain.ClosingHour {
			return ErrTooLateToBook
		}

		slotInstant := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
		if slotInstant.Before(snapUpToHalfHour(now)) {
			return ErrTooLateToBook
		}
	}

	return nil
}

// snapUpToHalfHour огрубленно округляет момент времени вверх:
// минуты > 30 — до :00 следующего часа, иначе до :30 текущего часа
func snapUpToHalfHour(now time.Time) time.Time {
	if now.Minute() > 30 {
		return time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	}
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 30, 0, 0, now.Location())
}
