package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notifyservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с записями на прием
type Service struct {
	appointmentRepo AppointmentRepository
	doctorRepo      DoctorRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись на прием по ID
// Доступ имеют только пациент, создавший запись, и назначенный врач
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.AppointmentResponse, error) {
	if id <= 0 || requesterID <= 0 {
		return nil, fmt.Errorf("%w: appointment id and requester id must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: failed to get appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if err := checkAppointmentAccess(appt, requesterID); err != nil {
		s.logger.Warn("GetByID: user=%d has no access to appointment id=%d", requesterID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// GetPatientAppointments получает историю записей пациента
// Сортировка — от новых к старым
func (s *Service) GetPatientAppointments(ctx context.Context, req *models.GetPatientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.PatientID <= 0 {
		return nil, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	filter := domain.AppointmentsFilter{
		PatientID: &req.PatientID,
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPatientAppointments: failed to get appointments for patient=%d: %v", req.PatientID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// GetDoctorAppointments получает расписание врача,
// опционально за конкретный день приема
func (s *Service) GetDoctorAppointments(ctx context.Context, req *models.GetDoctorAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	filter := domain.AppointmentsFilter{
		DoctorID: &req.DoctorID,
	}

	if req.SlotDate != nil {
		slotDate, err := parseSlotDateFilter(*req.SlotDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.SlotDate = slotDate
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDoctorAppointments: failed to get appointments for doctor=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись на прием и возвращает слот в свободные
// Статус отмены выбирается по роли инициатора: пациент или врач
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	if req.RequesterID <= 0 {
		return nil, fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: appointment id=%d, requester=%d", id, req.RequesterID)

	var cancelled *domain.Appointment

	// Отмена и освобождение слота — одна транзакция: запись не может
	// остаться отмененной с занятым слотом
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: failed to get appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 1. Роль инициатора определяет целевой статус
		var status domain.AppointmentStatus
		switch req.RequesterID {
		case appt.PatientID:
			status = domain.StatusCancelledByPatient
		case appt.DoctorID:
			status = domain.StatusCancelledByDoctor
		default:
			s.logger.Warn("Cancel: user=%d has no access to appointment id=%d", req.RequesterID, id)
			return ErrAccessDenied
		}

		// 2. Отменить можно только запланированную запись
		if !appt.CanBeCancelled() {
			s.logger.Warn("Cancel: appointment id=%d is in state %s", id, appt.Status)
			return ErrInvalidState
		}

		if err := s.appointmentRepo.Cancel(txCtx, id, status); err != nil {
			if errors.Is(err, appointmentRepo.ErrStatusConflict) {
				return ErrInvalidState
			}
			s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		// 3. Возвращаем слот в свободные
		if err := s.doctorRepo.ReleaseSlot(txCtx, appt.DoctorID, appt.SlotDate, appt.SlotTime); err != nil {
			if errors.Is(err, doctorRepo.ErrSlotNotFound) {
				// Слот уже свободен — конечное состояние достигнуто
				s.logger.Warn("Cancel: slot %s %s for doctor=%d was already free",
					appt.SlotDate, appt.SlotTime, appt.DoctorID)
			} else {
				s.logger.Error("Cancel: failed to release slot: %v", err)
				return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
			}
		}

		cancelled, err = s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			s.logger.Error("Cancel: failed to reload appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: appointment id=%d cancelled, status=%s", id, cancelled.Status)

	// Уведомление best-effort: недоставка не откатывает отмену
	if s.notifyClient != nil {
		_ = s.notifyClient.SendWithGracefulDegradation(ctx, &notifyservice.Notification{
			Event:         "appointment_cancelled",
			AppointmentID: cancelled.ID,
			DoctorID:      cancelled.DoctorID,
			PatientID:     cancelled.PatientID,
			SlotDate:      cancelled.SlotDate.String(),
			SlotTime:      cancelled.SlotTime.String(),
		})
	}

	return models.FromDomainAppointment(cancelled), nil
}

// Complete отмечает прием завершенным
// Завершить прием может только назначенный врач
func (s *Service) Complete(ctx context.Context, id int64, req *models.CompleteAppointmentRequest) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Complete: appointment id=%d, doctor=%d", id, req.DoctorID)

	var completed *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Complete: failed to get appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 1. Завершает прием только назначенный врач
		if appt.DoctorID != req.DoctorID {
			s.logger.Warn("Complete: doctor=%d is not assigned to appointment id=%d", req.DoctorID, id)
			return ErrAccessDenied
		}

		// 2. Завершить можно только запланированную запись
		if !appt.CanBeCompleted() {
			s.logger.Warn("Complete: appointment id=%d is in state %s", id, appt.Status)
			return ErrInvalidState
		}

		if err := s.appointmentRepo.Complete(txCtx, id); err != nil {
			if errors.Is(err, appointmentRepo.ErrStatusConflict) {
				return ErrInvalidState
			}
			s.logger.Error("Complete: failed to complete appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to complete appointment: %v", ErrInternal, err)
		}

		completed, err = s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			s.logger.Error("Complete: failed to reload appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: appointment id=%d completed", id)

	return models.FromDomainAppointment(completed), nil
}

// parseSlotDateFilter строго парсит дату приема из query-параметра
func parseSlotDateFilter(raw string) (*types.SlotDate, error) {
	slotDate, err := types.ParseSlotDate(raw)
	if err != nil {
		return nil, err
	}
	return &slotDate, nil
}

// checkAppointmentAccess проверяет, что пользователь является
// пациентом или врачом данной записи
func checkAppointmentAccess(appt *domain.Appointment, userID int64) error {
	if appt.PatientID == userID || appt.DoctorID == userID {
		return nil
	}
	return ErrAccessDenied
}
