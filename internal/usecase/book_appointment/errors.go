package book_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("book_appointment: doctor not found")

	// ErrDoctorUnavailable возвращается, когда врач закрыл прием новых бронирований
	ErrDoctorUnavailable = errors.New("book_appointment: doctor is not available for booking")

	// ErrSlotConflict возвращается, когда слот занят другим пациентом
	// (в том числе между показом доступности и отправкой бронирования)
	ErrSlotConflict = errors.New("book_appointment: slot is already booked")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("book_appointment: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("book_appointment: date is outside the booking window")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов клиники
	ErrInvalidTimeSlot = errors.New("book_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот сегодняшнего дня уже недоступен по времени
	ErrTooLateToBook = errors.New("book_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
