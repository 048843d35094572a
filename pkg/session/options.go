package session

import (
	"log/slog"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/qrcode"
)

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithType selects the initial content type. Unknown types are ignored.
func WithType(t content.Type) Option {
	return func(s *Session) {
		if t.Valid() {
			s.typ = t
		}
	}
}

// WithOptions sets the initial styling. The payload is always cleared.
func WithOptions(o qrcode.Options) Option {
	return func(s *Session) {
		if o.Validate() == nil {
			o.Payload = ""
			s.opts = o
		}
	}
}

// WithOnReady registers a hook invoked after every successful Generate.
func WithOnReady(hook ReadyHook) Option {
	return func(s *Session) {
		if hook != nil {
			s.onReady = append(s.onReady, hook)
		}
	}
}
