// Package guards provides prebuilt guard callbacks for guarded.Cell:
// structured change logging and JSON file persistence, plus a helper to
// chain several guards into one.
package guards

import (
	"log/slog"

	guarded "github.com/guarded-fn/guarded-go"
)

// Logged returns a guard that logs the value at INFO level after every
// mutation scope.
//
//	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
//	cell := guarded.New([]int{}, guards.Logged[[]int](logger, "content changed"))
//
// A nil logger falls back to slog.Default().
func Logged[T any](logger *slog.Logger, msg string) guarded.GuardFunc[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(v *T) {
		logger.Info(msg, "value", *v)
	}
}
