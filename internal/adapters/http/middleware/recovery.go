package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/guessgame/completionrate/internal/adapters/http/dto"
)

// errPanic is all a client learns about a recovered panic.
var errPanic = errors.New("internal server error")

// Recovery turns a panic below it into a logged stack trace and a 500 problem
// response. When the handler already started its response only the log entry
// is written. http.ErrAbortHandler passes through so net/http can drop the
// connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrap(w, r)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", ww.Status() != 0),
					slog.String("stack", string(debug.Stack())),
				)
				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
