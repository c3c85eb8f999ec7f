package create_booking

import "errors"

var (
	// ErrChildNotFound возвращается, когда ребенок не найден
	ErrChildNotFound = errors.New("create_booking: child not found")

	// ErrAccessDenied возвращается, когда ребенок зарегистрирован другим родителем
	ErrAccessDenied = errors.New("create_booking: child belongs to another parent")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotBlocked возвращается, когда слот закрыт администратором
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrSlotInPast возвращается, когда слот уже начался
	ErrSlotInPast = errors.New("create_booking: slot has already started")

	// ErrAlreadyBooked возвращается, когда у ребенка уже есть активное бронирование на слот
	ErrAlreadyBooked = errors.New("create_booking: child is already booked into this slot")

	// ErrNoCapacity возвращается, когда по нормам соотношения мест в возрастной группе нет
	ErrNoCapacity = errors.New("create_booking: no capacity for the child's age band")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
