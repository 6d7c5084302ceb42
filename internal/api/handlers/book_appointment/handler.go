package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotFormat  = "некорректный формат даты или времени слота"
	msgDoctorNotFound     = "врач не найден"
	msgDoctorUnavailable  = "врач не принимает новые записи"
	msgSlotConflict       = "выбранный слот уже занят"
	msgInvalidDate        = "некорректная дата приема"
	msgDateTooFar         = "дата приема слишком далеко в будущем"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgTooLateToBook      = "слишком поздно для записи на этот слот"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse slot: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotFormat)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: doctor_id=%d, slot=%s %s",
				req.DoctorID, req.SlotDate, req.SlotTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, bookAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%d", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, bookAppointment.ErrDoctorUnavailable):
			h.logger.Warn("POST /appointments - Doctor unavailable: doctor_id=%d", req.DoctorID)
			handlers.RespondBadRequest(w, msgDoctorUnavailable)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: doctor_id=%d, slot_date=%s", req.DoctorID, req.SlotDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: doctor_id=%d, slot_date=%s", req.DoctorID, req.SlotDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, bookAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: doctor_id=%d, slot_time=%s", req.DoctorID, req.SlotTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, bookAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: doctor_id=%d, slot=%s %s",
				req.DoctorID, req.SlotDate, req.SlotTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: doctor_id=%d, patient_id=%d, error=%v",
				req.DoctorID, req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment booked successfully: appointment_id=%d, doctor_id=%d, patient_id=%d",
		result.ID, req.DoctorID, req.PatientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
