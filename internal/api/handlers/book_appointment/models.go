package book_appointment

import (
	"time"

	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	DoctorID  int64  `json:"doctorId"`
	PatientID int64  `json:"patientId"`
	SlotDate  string `json:"slotDate"` // "5_8_2025"
	SlotTime  string `json:"slotTime"` // "10:30 am"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	DoctorID  int64   `json:"doctorId"`
	PatientID int64   `json:"patientId"`
	SlotDate  string  `json:"slotDate"`
	SlotTime  string  `json:"slotTime"`
	Fee       float64 `json:"fee"`
	Status    string  `json:"status"`
	Paid      bool    `json:"paid"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (со строгим парсингом даты и времени слота)
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	slotDate, err := types.ParseSlotDate(r.SlotDate)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.ParseTimeLabel(r.SlotTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		DoctorID:  r.DoctorID,
		PatientID: r.PatientID,
		SlotDate:  slotDate,
		SlotTime:  slotTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		DoctorID:  resp.DoctorID,
		PatientID: resp.PatientID,
		SlotDate:  resp.SlotDate.String(),
		SlotTime:  resp.SlotTime.String(),
		Fee:       resp.Fee,
		Status:    resp.Status,
		Paid:      resp.Paid,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
