package unassign_staff

import "context"

type StaffService interface {
	UnassignFromSlot(ctx context.Context, slotID, staffID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
