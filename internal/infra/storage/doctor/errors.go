package doctor

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor.repository: doctor not found")

	// ErrSlotTaken возвращается, когда слот уже занят
	// (условная вставка не добавила строку)
	ErrSlotTaken = errors.New("doctor.repository: slot already taken")

	// ErrSlotNotFound возвращается при попытке освободить незанятый слот
	ErrSlotNotFound = errors.New("doctor.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("doctor.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("doctor.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("doctor.repository: failed to scan row")
)
