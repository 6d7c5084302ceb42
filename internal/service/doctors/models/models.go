package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// ChangeAvailabilityRequest запрос на смену доступности врача
// Флаг передается явно, а не переключается, чтобы повтор запроса
// не давал обратный эффект
type ChangeAvailabilityRequest struct {
	Available bool `json:"available"`
}

// Response модели

// DoctorResponse ответ с данными врача
type DoctorResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Fee        float64 `json:"fee"`
	Available  bool    `json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DoctorListResponse ответ со справочником врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
}

// Методы конвертации

// FromDomainDoctor конвертирует domain модель в DTO
func FromDomainDoctor(d *domain.Doctor) *DoctorResponse {
	if d == nil {
		return nil
	}

	return &DoctorResponse{
		ID:         d.ID,
		Name:       d.Name,
		Speciality: d.Speciality,
		Fee:        d.Fee,
		Available:  d.Available,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// FromDomainDoctorList конвертирует список domain моделей в DTO
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	if doctors == nil {
		return &DoctorListResponse{
			Doctors: []DoctorResponse{},
		}
	}

	resp := &DoctorListResponse{
		Doctors: make([]DoctorResponse, len(doctors)),
	}

	for i, doc := range doctors {
		if docResp := FromDomainDoctor(doc); docResp != nil {
			resp.Doctors[i] = *docResp
		}
	}

	return resp
}
