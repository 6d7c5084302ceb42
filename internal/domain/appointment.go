package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment.
// A single status variant replaces the cancelled/completed boolean pair:
// "cancelled and completed" is not representable.
type AppointmentStatus string

const (
	StatusScheduled          AppointmentStatus = "scheduled"
	StatusCancelledByPatient AppointmentStatus = "cancelled_by_patient"
	StatusCancelledByDoctor  AppointmentStatus = "cancelled_by_doctor"
	StatusCompleted          AppointmentStatus = "completed"
)

// Appointment represents a booked clinic visit
type Appointment struct {
	ID        int64
	DoctorID  int64
	PatientID int64
	SlotDate  types.SlotDate
	SlotTime  types.TimeLabel
	Fee       float64 // Snapshot of the doctor's fee at booking time, immutable afterward
	Status    AppointmentStatus
	Paid      bool

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the appointment still occupies its slot
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled returns true if the appointment has been cancelled by either side
func (a *Appointment) IsCancelled() bool {
	for _, status := range CancelledStatuses {
		if a.Status == status {
			return true
		}
	}
	return false
}

// IsCompleted returns true if the doctor has marked the visit as completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted returns true if the appointment can be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusScheduled
}

// AppointmentsFilter фильтр для выборки записей на прием
type AppointmentsFilter struct {
	DoctorID  *int64             // Фильтр по врачу (опционально)
	PatientID *int64             // Фильтр по пациенту (опционально)
	SlotDate  *types.SlotDate    // Фильтр по дате приема (опционально)
	Status    *AppointmentStatus // Фильтр по статусу (опционально)
}
