package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/brew-review/internal/logger"
	"github.com/MKhiriev/brew-review/internal/service"
	"github.com/MKhiriev/brew-review/internal/store"
)

// operation names what a handler was doing, so persistence failures get a
// public message that does not depend on driver output.
type operation int

const (
	opRead operation = iota
	opInsert
)

func (op operation) failureMessage() string {
	if op == opInsert {
		return msgInsertFailed
	}
	return msgReadFailed
}

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first target matched by errors.Is wins.
// Anything unmatched is a 500 with the operation's failure message.
var errorResponses = []errorResponse{
	{target: service.ErrUserEmailRequired, status: http.StatusBadRequest, message: msgUserEmailRequired},
	{target: service.ErrReviewFilterRequired, status: http.StatusBadRequest, message: msgReviewFilterRequired},
	{target: service.ErrReviewFieldsRequired, status: http.StatusBadRequest, message: msgReviewFieldsRequired},

	{target: store.ErrUserNotFound, status: http.StatusNotFound, message: msgUserNotFound},

	// the request deadline set by middleware.Timeout expired during a query
	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, message: msgRequestTimeout},
}

func statusFromError(err error, op operation) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, op.failureMessage()
}

// writeError translates err into a text response. Server-side failures are
// logged with the full error chain; the body only ever carries the public message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, op operation) {
	status, message := statusFromError(err, op)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	writeText(w, r, status, message)
}
