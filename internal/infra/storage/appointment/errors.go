package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись на прием не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrStatusConflict возвращается, когда условное обновление статуса
	// не сработало: запись существует, но уже не в статусе scheduled
	ErrStatusConflict = errors.New("appointment.repository: appointment is not in scheduled status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
