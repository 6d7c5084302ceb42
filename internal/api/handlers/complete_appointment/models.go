package complete_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// CompleteAppointmentRequest HTTP request model
type CompleteAppointmentRequest struct {
	DoctorID int64 `json:"doctorId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CompleteAppointmentRequest) ToServiceRequest() *models.CompleteAppointmentRequest {
	return &models.CompleteAppointmentRequest{
		DoctorID: r.DoctorID,
	}
}
