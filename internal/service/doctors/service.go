package doctors

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

// Service сервис справочника врачей
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List получает весь справочник врачей
func (s *Service) List(ctx context.Context) (*models.DoctorListResponse, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list doctors: %v", err)
		return nil, fmt.Errorf("%w: failed to list doctors: %v", ErrInternal, err)
	}

	return models.FromDomainDoctorList(doctors), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: doctor id must be positive", ErrInvalidInput)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: failed to get doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doctor), nil
}

// ChangeAvailability включает/выключает прием новых бронирований
// Уже созданные записи при выключении не затрагиваются
func (s *Service) ChangeAvailability(ctx context.Context, id int64, req *models.ChangeAvailabilityRequest) (*models.DoctorResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: doctor id must be positive", ErrInvalidInput)
	}

	s.logger.Info("ChangeAvailability: doctor id=%d, available=%t", id, req.Available)

	if err := s.doctorRepo.SetAvailability(ctx, id, req.Available); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("ChangeAvailability: failed to update doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update availability: %v", ErrInternal, err)
	}

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ChangeAvailability: failed to reload doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to reload doctor: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doctor), nil
}
