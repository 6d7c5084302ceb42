package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notifyservice"
)

// UseCase use case для бронирования слота
type UseCase struct {
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case бронирования слота
// Проверка занятости и резервирование слота — одна атомарная операция
// (условная вставка в реестр слотов), поэтому при гонке N бронирований
// одного слота успешным будет ровно одно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: doctor=%d, patient=%d, date=%s, time=%s",
		req.DoctorID, req.PatientID, req.SlotDate, req.SlotTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем врача
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("BookAppointment: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookAppointment: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Врач должен принимать новые бронирования
	if !doctor.Available {
		uc.logger.Warn("BookAppointment: doctor id=%d is not available for booking", req.DoctorID)
		return nil, ErrDoctorUnavailable
	}

	// 5. Валидация слота (сетка клиники, окно бронирования, отсечка по времени)
	if err := validateSlot(req.SlotDate, req.SlotTime, now); err != nil {
		uc.logger.Warn("BookAppointment: slot validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Резервирование слота и создание записи — в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Атомарно резервируем слот
		if err := uc.doctorRepo.ReserveSlot(txCtx, req.DoctorID, req.SlotDate, req.SlotTime); err != nil {
			if errors.Is(err, doctorRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: slot %s %s already taken for doctor=%d",
					req.SlotDate, req.SlotTime, req.DoctorID)
				return ErrSlotConflict
			}
			uc.logger.Error("BookAppointment: failed to reserve slot: %v", err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 6.2. Создаем запись на прием с фиксацией текущей стоимости
		appt := &domain.Appointment{
			DoctorID:  req.DoctorID,
			PatientID: req.PatientID,
			SlotDate:  req.SlotDate,
			SlotTime:  req.SlotTime,
			Fee:       doctor.Fee,
			Status:    domain.StatusScheduled,
			Paid:      false,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	// 7. Уведомление best-effort: недоставка не отменяет бронирование
	if uc.notifyClient != nil {
		_ = uc.notifyClient.SendWithGracefulDegradation(ctx, &notifyservice.Notification{
			Event:         "appointment_booked",
			AppointmentID: result.ID,
			DoctorID:      result.DoctorID,
			PatientID:     result.PatientID,
			SlotDate:      result.SlotDate.String(),
			SlotTime:      result.SlotTime.String(),
		})
	}

	// Конвертируем в response
	return &Response{
		ID:        result.ID,
		DoctorID:  result.DoctorID,
		PatientID: result.PatientID,
		SlotDate:  result.SlotDate,
		SlotTime:  result.SlotTime,
		Fee:       result.Fee,
		Status:    string(result.Status),
		Paid:      result.Paid,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
