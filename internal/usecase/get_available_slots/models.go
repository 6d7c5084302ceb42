package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	DoctorID int64 // ID врача
}

// Response модель ответа со скользящим окном доступных слотов
// Days содержит только дни, в которых есть хотя бы один свободный слот,
// в порядке от ближайшего дня к дальнему
type Response struct {
	DoctorID int64   // ID врача
	Fee      float64 // Текущая стоимость приема
	Days     []Day   // Дни с доступными слотами
}

// Day слоты одного календарного дня
type Day struct {
	Date  types.SlotDate // Date-key дня (D_M_YYYY)
	Slots []Slot         // Упорядоченный список свободных слотов
}

// Slot модель временного слота
type Slot struct {
	StartsAt time.Time       // Момент начала слота
	Label    types.TimeLabel // Отображаемое время (например, "10:30 am")
}
