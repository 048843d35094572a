package api

import (
	"errors"
	"net/http"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/qrcode"
	"github.com/nesaranaeem/qr-box/pkg/scan"
	"github.com/nesaranaeem/qr-box/pkg/session"
	"github.com/nesaranaeem/qr-box/pkg/statemachine"
)

// HTTPError is an API error with status code and translation key.
// The user-facing message is looked up under "api.error.<Key>".
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

func (e HTTPError) translationKey() string {
	return "api.error." + e.Key
}

var (
	ErrBadRequest       = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrSessionNotFound  = HTTPError{Code: http.StatusNotFound, Key: "session_not_found"}
	ErrWrongType        = HTTPError{Code: http.StatusBadRequest, Key: "wrong_type"}
	ErrUnknownType      = HTTPError{Code: http.StatusBadRequest, Key: "unknown_type"}
	ErrNotReady         = HTTPError{Code: http.StatusConflict, Key: "not_ready"}
	ErrInvalidSize      = HTTPError{Code: http.StatusBadRequest, Key: "invalid_size"}
	ErrInvalidColor     = HTTPError{Code: http.StatusBadRequest, Key: "invalid_color"}
	ErrInvalidLogo      = HTTPError{Code: http.StatusBadRequest, Key: "invalid_logo"}
	ErrInvalidImage     = HTTPError{Code: http.StatusBadRequest, Key: "invalid_image"}
	ErrTooLarge         = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "too_large"}
	ErrTooManyRequests  = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrEmptyContent     = HTTPError{Code: http.StatusUnprocessableEntity, Key: "empty_content"}
	ErrRenderFailed     = HTTPError{Code: http.StatusInternalServerError, Key: "render_failed"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Key: "internal"}
)

// toHTTPError maps domain errors onto API errors. Unknown errors become ErrInternal.
func toHTTPError(err error) HTTPError {
	var httpErr HTTPError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &tooLarge):
		return ErrTooLarge
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrSessionExpired):
		return ErrSessionNotFound
	case errors.Is(err, session.ErrWrongType):
		return ErrWrongType
	case errors.Is(err, content.ErrUnknownType):
		return ErrUnknownType
	case errors.Is(err, qrcode.ErrInvalidSize):
		return ErrInvalidSize
	case errors.Is(err, qrcode.ErrInvalidColor):
		return ErrInvalidColor
	case errors.Is(err, qrcode.ErrInvalidLogo):
		return ErrInvalidLogo
	case errors.Is(err, scan.ErrInvalidImage):
		return ErrInvalidImage
	case errors.Is(err, qrcode.ErrEmptyContent):
		return ErrEmptyContent
	case errors.Is(err, qrcode.ErrFailedToGenerate):
		return ErrRenderFailed
	case errors.Is(err, statemachine.ErrNoTransition), errors.Is(err, statemachine.ErrRejected):
		return ErrNotReady
	}
	return ErrInternal
}
