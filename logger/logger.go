package logger

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// New builds a JSON logger that renders error values with their
// pkg/errors stack trace when one is attached.
func New(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		ReplaceAttr: replaceAttr,
		Level:       level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			a.Value = fmtErr(err)
		}
	}
	return a
}

// fmtErr returns a slog.GroupValue with keys "msg" and "trace". The
// "trace" key is omitted when no error in the chain carries a stack.
func fmtErr(err error) slog.Value {
	groupValues := []slog.Attr{slog.String("msg", err.Error())}

	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	// Walk to the deepest error that carries a stack, which points at the
	// first errors.New/Wrap/WithStack call site.
	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			st = t
		}
	}

	if st != nil {
		frames := st.StackTrace()
		trace := make([]string, 0, len(frames))
		for _, frame := range frames {
			text, err := frame.MarshalText()
			if err != nil {
				continue
			}
			trace = append(trace, string(text))
		}
		groupValues = append(groupValues, slog.Any("trace", trace))
	}

	return slog.GroupValue(groupValues...)
}
