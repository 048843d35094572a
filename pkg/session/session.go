package session

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/qrcode"
	"github.com/nesaranaeem/qr-box/pkg/statemachine"
)

// State is the lifecycle state of a QR generator session.
type State string

const (
	Editing    State = "editing"
	Validating State = "validating"
	Ready      State = "ready"
	Error      State = "error"
)

// Event drives the session state machine.
type Event string

const (
	EventEdit     Event = "edit"
	EventGenerate Event = "generate"
	EventValid    Event = "valid"
	EventInvalid  Event = "invalid"
)

// ReadyHook is called after a successful Generate with the options to render.
type ReadyHook func(ctx context.Context, opts qrcode.Options)

// Session holds the form state of one QR generator: the selected content type,
// its raw input, the styling options and the last validation outcome.
// A Session is owned by a single caller and is not safe for concurrent use;
// MemoryStore.With serializes access for shared sessions.
type Session struct {
	typ   content.Type
	input content.Input
	opts  qrcode.Options
	kind  content.ErrorKind

	fsm     *statemachine.Machine[State, Event]
	log     *slog.Logger
	onReady []ReadyHook
}

// New creates a session in the Editing state with the URL type selected
// and its default input.
func New(opts ...Option) *Session {
	s := &Session{
		typ:  content.URL,
		opts: qrcode.DefaultOptions(),
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.input = DefaultInput(s.typ)
	s.fsm = newMachine(s.log)
	return s
}

func newMachine(log *slog.Logger) *statemachine.Machine[State, Event] {
	trace := statemachine.WithAction(func(ctx context.Context, from, to State, event Event, _ any) error {
		log.DebugContext(ctx, "session transition",
			logger.Event(string(event)),
			logger.Transition(string(from), string(to)),
		)
		return nil
	})
	editable := []State{Editing, Ready, Error}

	return statemachine.MustNew(Editing,
		statemachine.WithTransitionFrom(editable, Editing, EventEdit, trace),
		statemachine.WithTransitionFrom(editable, Validating, EventGenerate, trace),
		statemachine.WithTransition(Validating, Ready, EventValid, trace),
		statemachine.WithTransition(Validating, Error, EventInvalid, trace),
	)
}

// SetType selects t and resets the input to t's default.
func (s *Session) SetType(ctx context.Context, t content.Type) error {
	if !t.Valid() {
		return content.ErrUnknownType
	}
	if err := s.edit(ctx); err != nil {
		return err
	}
	s.typ = t
	s.input = DefaultInput(t)
	return nil
}

// SetValue stores the raw input of a single-value type. No validation happens until Generate.
func (s *Session) SetValue(ctx context.Context, v string) error {
	if s.typ == content.Contact {
		return ErrWrongType
	}
	if err := s.edit(ctx); err != nil {
		return err
	}
	s.input = content.ValueInput(v)
	return nil
}

// SetContact stores the contact fields. Valid only while the Contact type is selected.
func (s *Session) SetContact(ctx context.Context, c content.ContactFields) error {
	if s.typ != content.Contact {
		return ErrWrongType
	}
	if err := s.edit(ctx); err != nil {
		return err
	}
	s.input = content.ContactInput(c)
	return nil
}

func (s *Session) edit(ctx context.Context) error {
	if err := s.fsm.Fire(ctx, EventEdit, nil); err != nil {
		return err
	}
	s.kind = content.ErrorNone
	return nil
}

// Generate validates the current input. A valid input becomes the QR payload and
// moves the session to Ready; an invalid one records the error kind, keeps the
// previous payload and moves the session to Error. The returned error is only
// non-nil when the session is in a state that cannot generate.
func (s *Session) Generate(ctx context.Context) (content.Result, error) {
	if err := s.fsm.Fire(ctx, EventGenerate, nil); err != nil {
		return content.Result{}, err
	}

	res := content.Validate(s.typ, s.input)
	if res.OK() && res.Payload == "" {
		res = content.Invalid(content.ErrorEmptyPayload)
	}

	if !res.OK() {
		if err := s.fsm.Fire(ctx, EventInvalid, res); err != nil {
			return content.Result{}, err
		}
		s.kind = res.Kind
		s.log.DebugContext(ctx, "qr content rejected",
			logger.ContentType(s.typ),
			slog.String("kind", string(res.Kind)),
		)
		return res, nil
	}

	if err := s.fsm.Fire(ctx, EventValid, res); err != nil {
		return content.Result{}, err
	}
	s.kind = content.ErrorNone
	s.opts.Payload = res.Payload

	for _, hook := range s.onReady {
		hook(ctx, s.Options())
	}
	return res, nil
}

// SetSize changes the image side in pixels.
func (s *Session) SetSize(size int) error {
	if err := qrcode.ValidateSize(size); err != nil {
		return err
	}
	s.opts.Size = size
	return nil
}

// SetForeground changes the module color; hex must be #RRGGBB.
func (s *Session) SetForeground(hex string) error {
	if _, err := qrcode.ParseHexColor(hex); err != nil {
		return err
	}
	s.opts.Foreground = hex
	return nil
}

// SetBackground changes the background color; hex must be #RRGGBB.
func (s *Session) SetBackground(hex string) error {
	if _, err := qrcode.ParseHexColor(hex); err != nil {
		return err
	}
	s.opts.Background = hex
	return nil
}

// SetLogo attaches a logo image. A nil or empty logo removes it.
func (s *Session) SetLogo(logo []byte) error {
	if len(logo) == 0 {
		s.opts.Logo = nil
		return nil
	}
	if err := qrcode.ValidateLogo(logo); err != nil {
		return err
	}
	s.opts.Logo = slices.Clone(logo)
	return nil
}

// ResetStyle restores default styling. The payload is kept.
func (s *Session) ResetStyle() {
	payload := s.opts.Payload
	s.opts = qrcode.DefaultOptions()
	s.opts.Payload = payload
}

func (s *Session) Type() content.Type { return s.typ }

// Value returns the raw single-value input, empty for Contact.
func (s *Session) Value() string { return s.input.Value }

func (s *Session) Contact() content.ContactFields { return s.input.Contact }

func (s *Session) Input() content.Input { return s.input }

func (s *Session) State() State { return s.fsm.Current() }

// Err returns the error kind of the last failed Generate, or ErrorNone once the
// session left the Error state.
func (s *Session) Err() content.ErrorKind { return s.kind }

// Ready reports whether the last Generate succeeded and nothing was edited since.
func (s *Session) Ready() bool { return s.fsm.Is(Ready) }

// Options returns a copy of the rendering options. Payload holds the last valid payload.
func (s *Session) Options() qrcode.Options {
	o := s.opts
	o.Logo = slices.Clone(s.opts.Logo)
	return o
}

// Preview returns the unvalidated encoding of the current input for live
// previews while the user types, or "Preview" when that encoding is blank.
func (s *Session) Preview() string {
	if p := content.Encode(s.typ, s.input); strings.TrimSpace(p) != "" {
		return p
	}
	return "Preview"
}

// PreviewOptions returns the current styling with Preview as payload.
func (s *Session) PreviewOptions() qrcode.Options {
	o := s.Options()
	o.Payload = s.Preview()
	return o
}
