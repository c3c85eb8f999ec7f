package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда сотрудник не назначен на слот
	ErrScheduleNotFound = errors.New("schedule.repository: staff is not assigned to slot")

	// ErrAlreadyAssigned возвращается при повторном назначении сотрудника на слот
	ErrAlreadyAssigned = errors.New("schedule.repository: staff already assigned to slot")

	// ErrReferenceNotFound возвращается, когда сотрудник или слот не существуют
	ErrReferenceNotFound = errors.New("schedule.repository: staff or slot does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
