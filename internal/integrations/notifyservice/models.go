package notifyservice

// Notification событие для сервиса уведомлений
type Notification struct {
	Event         string `json:"event"` // "appointment_booked" | "appointment_cancelled"
	AppointmentID int64  `json:"appointment_id"`
	DoctorID      int64  `json:"doctor_id"`
	PatientID     int64  `json:"patient_id"`
	SlotDate      string `json:"slot_date"` // D_M_YYYY
	SlotTime      string `json:"slot_time"` // "10:30 am"
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
