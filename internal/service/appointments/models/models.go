package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
// Отменить запись может пациент, который её создал, или назначенный врач
type CancelAppointmentRequest struct {
	RequesterID int64 `json:"requesterId"`
}

// CompleteAppointmentRequest запрос на завершение приема (только врач)
type CompleteAppointmentRequest struct {
	DoctorID int64 `json:"doctorId"`
}

// GetPatientAppointmentsRequest запрос истории записей пациента
type GetPatientAppointmentsRequest struct {
	PatientID int64   `json:"patientId"`
	Status    *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetDoctorAppointmentsRequest запрос расписания врача
type GetDoctorAppointmentsRequest struct {
	DoctorID int64   `json:"doctorId"`
	SlotDate *string `json:"slotDate,omitempty"` // Фильтр по дате приема, D_M_YYYY (опционально)
	Status   *string `json:"status,omitempty"`   // Фильтр по статусу (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи на прием
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	DoctorID  int64   `json:"doctorId"`
	PatientID int64   `json:"patientId"`
	SlotDate  string  `json:"slotDate"` // "5_8_2025"
	SlotTime  string  `json:"slotTime"` // "10:30 am"
	Fee       float64 `json:"fee"`
	Status    string  `json:"status"`
	Paid      bool    `json:"paid"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:        a.ID,
		DoctorID:  a.DoctorID,
		PatientID: a.PatientID,
		SlotDate:  a.SlotDate.String(),
		SlotTime:  a.SlotTime.String(),
		Fee:       a.Fee,
		Status:    string(a.Status),
		Paid:      a.Paid,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
