package middleware

import (
	"net/http"

	"club-booking/pkg/utils"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 envelope and logs the stack.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}
				// net/http uses this panic to abort a response on purpose
				if err == http.ErrAbortHandler {
					panic(err)
				}

				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.Stack("stack"),
				)

				utils.ResponseInternalError(w, "Something went wrong. Please try again.")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
