package session

import (
	"github.com/nesaranaeem/qr-box/pkg/content"
)

// Style is the serializable part of the rendering options.
type Style struct {
	Size       int    `json:"size"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	HasLogo    bool   `json:"has_logo"`
}

// Snapshot is a read-only JSON view of a session.
type Snapshot struct {
	ID      string            `json:"id,omitempty"`
	Type    content.Type      `json:"type"`
	Input   content.Input     `json:"input"`
	State   State             `json:"state"`
	Error   content.ErrorKind `json:"error,omitempty"`
	Payload string            `json:"payload,omitempty"`
	Preview string            `json:"preview"`
	Style   Style             `json:"style"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Type:    s.typ,
		Input:   s.input,
		State:   s.State(),
		Error:   s.kind,
		Payload: s.opts.Payload,
		Preview: s.Preview(),
		Style: Style{
			Size:       s.opts.Size,
			Foreground: s.opts.Foreground,
			Background: s.opts.Background,
			HasLogo:    s.opts.HasLogo(),
		},
	}
}
