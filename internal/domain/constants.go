package domain

// Clinic schedule constants
const (
	// OpeningHour первый час приема (10:00)
	OpeningHour = 10

	// ClosingHour час закрытия клиники (21:00), слоты строго раньше
	ClosingHour = 21

	// SlotDurationMinutes длительность одного слота
	SlotDurationMinutes = 30

	// BookingWindowDays скользящее окно бронирования в днях
	BookingWindowDays = 7
)

// CancelledStatuses список статусов отмененных записей
var CancelledStatuses = []AppointmentStatus{
	StatusCancelledByPatient,
	StatusCancelledByDoctor,
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCancelledByPatient,
	StatusCancelledByDoctor,
	StatusCompleted,
}
