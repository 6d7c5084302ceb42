package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	DoctorID  int64           // ID врача
	PatientID int64           // ID пациента (из аутентификации)
	SlotDate  types.SlotDate  // Date-key слота (D_M_YYYY)
	SlotTime  types.TimeLabel // Время слота (например, "10:30 am")
}

// Response модель ответа с созданной записью на прием
type Response struct {
	ID        int64           // ID созданной записи
	DoctorID  int64           // ID врача
	PatientID int64           // ID пациента
	SlotDate  types.SlotDate  // Дата приема
	SlotTime  types.TimeLabel // Время приема
	Fee       float64         // Зафиксированная стоимость приема
	Status    string          // Статус записи
	Paid      bool            // Флаг оплаты

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
