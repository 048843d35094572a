package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nesaranaeem/qr-box/pkg/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries a stable code and a localized message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) ok(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Data: data})
}

// fail logs err and writes its localized API error.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := toHTTPError(err)
	ctx := r.Context()

	level := slog.LevelWarn
	if httpErr.Code >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	a.log.LogAttrs(ctx, level, "request error",
		logger.Error(err),
		slog.Int("status_code", httpErr.Code),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	writeJSON(w, httpErr.Code, Envelope{Error: &ErrorDetail{
		Code:    httpErr.Key,
		Message: a.tr.Tc(ctx, httpErr.translationKey()),
	}})
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return errors.Join(ErrBadRequest, err)
	}
	return nil
}
