package get_available_slots

import "errors"

var (
	// ErrChildNotFound возвращается, когда ребенок не найден
	ErrChildNotFound = errors.New("get_available_slots: child not found")

	// ErrAccessDenied возвращается, когда ребенок зарегистрирован другим родителем
	ErrAccessDenied = errors.New("get_available_slots: child belongs to another parent")

	// ErrInvalidDate возвращается, когда период целиком в прошлом
	ErrInvalidDate = errors.New("get_available_slots: invalid date range")

	// ErrRangeTooLarge возвращается, когда период превышает допустимый
	ErrRangeTooLarge = errors.New("get_available_slots: date range is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
