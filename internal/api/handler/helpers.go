package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/catalog/internal/api/request"
	"github.com/edvin/catalog/internal/api/response"
	"github.com/edvin/catalog/internal/core"
)

// writeStoreError maps a service error to a response. Schema failures are
// 400, ErrNotFound gets notFoundStatus with notFoundMsg, and anything else is
// logged and answered 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, notFoundStatus int, notFoundMsg string) {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		response.WriteFailure(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, core.ErrNotFound):
		response.WriteFailure(w, notFoundStatus, notFoundMsg)
	default:
		internalError(w, r, err)
	}
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("store operation failed")
	response.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// writeDecodeError answers a failed request.Decode: 413 when the body was
// over the limit, 400 otherwise.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, request.ErrBodyTooLarge) {
		response.WriteFailure(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	response.WriteFailure(w, http.StatusBadRequest, err.Error())
}
