package get_occupancy

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_occupancy: invalid input data")

	// ErrRangeTooLarge возвращается, когда период превышает допустимый
	ErrRangeTooLarge = errors.New("get_occupancy: date range is too large")

	// ErrExport возвращается при ошибке формирования файла выгрузки
	ErrExport = errors.New("get_occupancy: failed to build export")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy: internal error")
)
