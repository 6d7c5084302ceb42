package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID int64      `json:"doctorId"`
	Fee      float64    `json:"fee"`
	Days     []SlotsDay `json:"days"`
}

// SlotsDay слоты одного календарного дня
type SlotsDay struct {
	Date  string          `json:"date"` // "5_8_2025"
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	DateTime string `json:"datetime"` // ISO 8601 момент начала слота
	Time     string `json:"time"`     // "10:30 am"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]SlotsDay, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]AvailableSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = AvailableSlot{
				DateTime: slot.StartsAt.Format("2006-01-02T15:04:05Z07:00"),
				Time:     slot.Label.String(),
			}
		}
		days[i] = SlotsDay{
			Date:  day.Date.String(),
			Slots: slots,
		}
	}

	return &AvailableSlotsResponse{
		DoctorID: resp.DoctorID,
		Fee:      resp.Fee,
		Days:     days,
	}
}
