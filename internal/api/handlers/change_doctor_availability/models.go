package change_doctor_availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

// ChangeAvailabilityRequest HTTP request model
// Флаг передается явно: повтор запроса идемпотентен
type ChangeAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ChangeAvailabilityRequest) ToServiceRequest() *models.ChangeAvailabilityRequest {
	return &models.ChangeAvailabilityRequest{
		Available: r.Available,
	}
}
