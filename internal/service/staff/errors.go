package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrEmailTaken возвращается, когда email уже используется
	ErrEmailTaken = errors.New("email already taken")

	// ErrAlreadyAssigned возвращается при повторном назначении на слот
	ErrAlreadyAssigned = errors.New("staff member already assigned to slot")

	// ErrNotAssigned возвращается, когда сотрудник не назначен на слот
	ErrNotAssigned = errors.New("staff member is not assigned to slot")

	// ErrSlotOrStaffNotFound возвращается, когда слот или сотрудник не существуют
	ErrSlotOrStaffNotFound = errors.New("slot or staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
