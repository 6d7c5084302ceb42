package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения доступных слотов врача
type UseCase struct {
	doctorRepo   DoctorRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(doctorRepo DoctorRepository, logger Logger) *UseCase {
	return &UseCase{
		doctorRepo:   doctorRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%d", req.DoctorID)

	// 1. Валидация входных данных
	if req.DoctorID <= 0 {
		uc.logger.Warn("GetAvailableSlots: validation failed: doctorID must be positive")
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем врача
	// Флаг available намеренно НЕ влияет на генерацию слотов:
	// он закрывает только создание новых бронирований
	doctor, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Получаем реестр занятых слотов на окно бронирования
	from := types.NewSlotDate(now)
	to := types.NewSlotDate(now.AddDate(0, 0, domain.BookingWindowDays-1))

	booked, err := uc.doctorRepo.GetSlotsBooked(ctx, req.DoctorID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 5. Генерируем окно доступных слотов
	days := generateWindow(now, booked)

	totalSlots := 0
	for _, day := range days {
		totalSlots += len(day.Slots)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots across %d days for doctor=%d",
		totalSlots, len(days), req.DoctorID)

	return &Response{
		DoctorID: doctor.ID,
		Fee:      doctor.Fee,
		Days:     days,
	}, nil
}
