// internal/app/features/errors/errorlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages so
// handlers can report a failure in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs an internal failure with request context and renders
// the generic error page with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs a client error and renders the bad-request page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Warn(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogNotFound logs a lookup miss and renders the 404 page.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, userMsg, backURL string) {
	e.log.Info(msg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderNotFound(w, r, userMsg, backURL)
}
