package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Recover runs fn and turns a panic into an error, logging the stack
func Recover(logger *slog.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	return fn()
}
