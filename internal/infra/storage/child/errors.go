package child

import "errors"

var (
	// ErrChildNotFound возвращается, когда ребенок не найден
	ErrChildNotFound = errors.New("child.repository: child not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("child.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("child.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("child.repository: failed to scan row")
)
