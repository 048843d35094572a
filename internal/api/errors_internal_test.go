package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nesaranaeem/qr-box/pkg/qrcode"
	"github.com/nesaranaeem/qr-box/pkg/session"
	"github.com/nesaranaeem/qr-box/pkg/statemachine"
)

func TestToHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want HTTPError
	}{
		{"empty payload is a client error", fmt.Errorf("render: %w", qrcode.ErrEmptyContent), ErrEmptyContent},
		{"oversized payload", errors.Join(qrcode.ErrFailedToGenerate, errors.New("too long")), ErrRenderFailed},
		{"expired session", session.ErrSessionExpired, ErrSessionNotFound},
		{"fsm rejection", &statemachine.TransitionError{From: "validating", Event: "edit"}, ErrNotReady},
		{"passthrough", ErrTooManyRequests, ErrTooManyRequests},
		{"unknown", errors.New("boom"), ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, toHTTPError(tt.err))
		})
	}

	assert.Less(t, toHTTPError(qrcode.ErrEmptyContent).Code, http.StatusInternalServerError)
}
