package server

import (
	"context"
	"errors"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	"go.uber.org/zap"

	"sankalp/internal/domain"
	"sankalp/internal/services"
)

// envelope is the body of every form endpoint response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type handlers struct {
	forms  *services.FormService
	health *services.HealthService
	logger *zap.Logger
}

func (h *handlers) submit(kind domain.Kind) http.HandlerFunc {
	msgs := h.forms.Messages(kind)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var raw map[string]any
		err := goahttp.RequestDecoder(r).Decode(&raw)
		if err == nil && raw == nil {
			err = errors.New("body is null")
		}
		if err != nil {
			h.forms.RejectBody(ctx, kind, err)
			h.write(ctx, w, http.StatusBadRequest, envelope{
				Message: services.MessageValidationFailed,
				Error:   services.ErrorBodyNotObject,
			})
			return
		}

		rec, err := h.forms.Submit(ctx, kind, raw)
		if err != nil {
			msg, detail := services.FailureText(err, "Failed to process "+msgs.Noun)
			h.write(ctx, w, services.HTTPStatus(err), envelope{Message: msg, Error: detail})
			return
		}
		h.write(ctx, w, http.StatusCreated, envelope{
			Success: true,
			Data:    rec,
			Message: msgs.Submitted,
		})
	}
}

func (h *handlers) list(kind domain.Kind) http.HandlerFunc {
	msgs := h.forms.Messages(kind)
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		records, err := h.forms.List(ctx, kind)
		if err != nil {
			msg, detail := services.FailureText(err, "Failed to fetch "+msgs.ListNoun)
			h.write(ctx, w, services.HTTPStatus(err), envelope{Message: msg, Error: detail})
			return
		}
		h.write(ctx, w, http.StatusOK, envelope{
			Success: true,
			Data:    records,
			Message: msgs.Listed,
		})
	}
}

func (h *handlers) checkHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.health.Check(ctx)
	status := http.StatusOK
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		status = http.StatusServiceUnavailable
	}
	h.write(ctx, w, status, res)
}

// write encodes body as the response. The encoder sets Content-Type, so it
// is created before the status is written.
func (h *handlers) write(ctx context.Context, w http.ResponseWriter, status int, body any) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(body); err != nil {
		h.logger.Warn("encode response", zap.Error(err))
	}
}
