// Package logx provides nil-tolerant slog helpers that stamp the
// caller's location into every record.
package logx

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/pagefb/pagefb/internal/errors"
)

// Log hands one record to logger with the program counter taken skip
// frames up the stack. A nil logger drops the record.
func Log(msg string, logger *slog.Logger, lvl slog.Level, skip int, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	_ = logger.With(args...).Handler().Handle(context.Background(), r)
}

func Debug(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelDebug, 3, args...)
}

func Info(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelInfo, 3, args...)
}

func Warn(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelWarn, 3, args...)
}

func Error(msg string, logger *slog.Logger, args ...any) {
	Log(msg, logger, slog.LevelError, 3, args...)
}

// Err logs err at lvl and returns it unchanged; nil passes through
// silently. Joined errors are logged one record each.
func Err(err error, logger *slog.Logger, lvl slog.Level, args ...any) error {
	if err == nil {
		return nil
	}
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range errs.Unwrap() {
			Log(e.Error(), logger, lvl, 3, args...)
		}
	} else {
		Log(err.Error(), logger, lvl, 3, args...)
	}
	return err
}

// TimeIt runs fn and logs its wall time at info level.
func TimeIt(fn func() error, msg string, logger *slog.Logger, args ...any) error {
	if fn == nil {
		return errors.New(`provided nil func`)
	}
	if len(msg) == 0 {
		msg = `duration measurement for function`
	}
	start := time.Now()
	err := fn()
	Info(msg, logger, append([]any{`duration`, time.Since(start)}, args...)...)
	return err
}
