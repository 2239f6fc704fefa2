package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/brew-review/internal/logger"
)

// accessLogFormatter plugs the request-scoped zerolog logger into chi's
// RequestLogger. It must run after withTraceID so entries carry trace_id.
type accessLogFormatter struct{}

func (accessLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &accessLogEntry{
		log:        logger.FromRequest(r),
		uri:        r.RequestURI,
		method:     r.Method,
		remoteAddr: r.RemoteAddr,
	}
}

type accessLogEntry struct {
	log *logger.Logger

	uri        string
	method     string
	remoteAddr string
}

// Write emits one access line per request; 5xx responses are logged at error level.
func (e *accessLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	event := e.log.Info()
	if status >= http.StatusInternalServerError {
		event = e.log.Error()
	}

	e.fields(event).
		Int("status", status).
		Dur("duration", elapsed).
		Int("size", bytes).
		Send()
}

// Panic is called by middleware.Recoverer before it answers 500.
func (e *accessLogEntry) Panic(v any, stack []byte) {
	e.fields(e.log.Error()).
		Interface("panic", v).
		Bytes("stack", stack).
		Msg("recovered from panic")
}

func (e *accessLogEntry) fields(event *zerolog.Event) *zerolog.Event {
	return event.
		Str("uri", e.uri).
		Str("method", e.method).
		Str("remote_addr", e.remoteAddr)
}
