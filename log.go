package blockindex

import "log/slog"

// warnBuildError logs a build-time error at warn level before it is
// returned to the caller. The package never decides on the caller's behalf
// whether the condition is fatal, so nothing is logged above warn.
func warnBuildError(op string, err error, kv ...any) {
	args := append([]any{"op", op, "error", err}, kv...)
	slog.Warn("blockindex: build error", args...)
}
