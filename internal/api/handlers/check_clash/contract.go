package check_clash

import (
	"context"

	checkClash "github.com/m04kA/RMS-BookingService/internal/usecase/check_clash"
)

type CheckClashUseCase interface {
	Execute(ctx context.Context, req *checkClash.Request) (*checkClash.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
