package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nesaranaeem/qr-box/pkg/content"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/qrcode"
	"github.com/nesaranaeem/qr-box/pkg/session"
)

type createRequest struct {
	Type string `json:"type"`
}

type typeRequest struct {
	Type string `json:"type"`
}

type inputRequest struct {
	Value   *string                `json:"value"`
	Contact *content.ContactFields `json:"contact"`
}

// styleRequest changes only the fields that are present. Reset is applied
// first; an empty Logo removes the logo.
type styleRequest struct {
	Size       *int    `json:"size"`
	Foreground *string `json:"foreground"`
	Background *string `json:"background"`
	Logo       *string `json:"logo"`
	Reset      bool    `json:"reset"`
}

type generateResponse struct {
	Result  content.Result   `json:"result"`
	Session session.Snapshot `json:"session"`
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		a.fail(w, r, err)
		return
	}

	opts := []session.Option{session.WithLogger(a.log)}
	if req.Type != "" {
		t, err := content.ParseType(req.Type)
		if err != nil {
			a.fail(w, r, err)
			return
		}
		opts = append(opts, session.WithType(t))
	}

	sess := session.New(opts...)
	id, err := a.store.Create(r.Context(), sess)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	snap := sess.Snapshot()
	snap.ID = id
	a.log.InfoContext(r.Context(), "session created", logger.SessionID(id), logger.ContentType(sess.Type()))
	a.ok(w, http.StatusCreated, snap)
}

// withSession runs fn under the session lock and responds with the resulting snapshot.
func (a *API) withSession(w http.ResponseWriter, r *http.Request, fn func(context.Context, *session.Session) error) {
	id := chi.URLParam(r, "id")
	var snap session.Snapshot
	err := a.store.With(r.Context(), id, func(s *session.Session) error {
		if fn != nil {
			if err := fn(r.Context(), s); err != nil {
				return err
			}
		}
		snap = s.Snapshot()
		return nil
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	snap.ID = id
	a.ok(w, http.StatusOK, snap)
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	a.withSession(w, r, nil)
}

func (a *API) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setType(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
	if err := decodeJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	t, err := content.ParseType(req.Type)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.withSession(w, r, func(ctx context.Context, s *session.Session) error {
		return s.SetType(ctx, t)
	})
}

func (a *API) setInput(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := decodeJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	a.withSession(w, r, func(ctx context.Context, s *session.Session) error {
		switch {
		case req.Contact != nil:
			return s.SetContact(ctx, *req.Contact)
		case req.Value != nil:
			return s.SetValue(ctx, *req.Value)
		default:
			return ErrBadRequest
		}
	})
}

func (a *API) setStyle(w http.ResponseWriter, r *http.Request) {
	var req styleRequest
	if err := decodeJSON(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	// Validate everything up front so a rejected request leaves the style untouched.
	var logo []byte
	if req.Size != nil {
		if err := qrcode.ValidateSize(*req.Size); err != nil {
			a.fail(w, r, err)
			return
		}
	}
	for _, hex := range []*string{req.Foreground, req.Background} {
		if hex == nil {
			continue
		}
		if _, err := qrcode.ParseHexColor(*hex); err != nil {
			a.fail(w, r, err)
			return
		}
	}
	if req.Logo != nil && *req.Logo != "" {
		var err error
		if logo, err = qrcode.ParseDataURI(*req.Logo); err != nil {
			a.fail(w, r, err)
			return
		}
		if err := qrcode.ValidateLogo(logo); err != nil {
			a.fail(w, r, err)
			return
		}
	}

	a.withSession(w, r, func(_ context.Context, s *session.Session) error {
		if req.Reset {
			s.ResetStyle()
		}
		if req.Size != nil {
			if err := s.SetSize(*req.Size); err != nil {
				return err
			}
		}
		if req.Foreground != nil {
			if err := s.SetForeground(*req.Foreground); err != nil {
				return err
			}
		}
		if req.Background != nil {
			if err := s.SetBackground(*req.Background); err != nil {
				return err
			}
		}
		if req.Logo != nil {
			return s.SetLogo(logo)
		}
		return nil
	})
}

func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var resp generateResponse
	err := a.store.With(r.Context(), id, func(s *session.Session) error {
		res, err := s.Generate(r.Context())
		if err != nil {
			return err
		}
		resp.Result = res
		resp.Session = s.Snapshot()
		return nil
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp.Session.ID = id

	if !resp.Result.OK() {
		kind := resp.Result.Kind
		a.log.InfoContext(r.Context(), "qr content rejected",
			logger.SessionID(id),
			logger.ContentType(resp.Session.Type),
			slog.String("kind", kind.String()),
		)
		writeJSON(w, http.StatusUnprocessableEntity, Envelope{
			Data: resp,
			Error: &ErrorDetail{
				Code:    kind.String(),
				Message: a.tr.Tdc(r.Context(), kind.TranslationKey(), kind.Message()),
			},
		})
		return
	}
	a.ok(w, http.StatusOK, resp)
}

func (a *API) qrPNG(w http.ResponseWriter, r *http.Request) {
	var opts qrcode.Options
	err := a.store.With(r.Context(), chi.URLParam(r, "id"), func(s *session.Session) error {
		if !s.Ready() {
			return ErrNotReady
		}
		opts = s.Options()
		return nil
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, opts)
}

func (a *API) previewPNG(w http.ResponseWriter, r *http.Request) {
	var opts qrcode.Options
	err := a.store.With(r.Context(), chi.URLParam(r, "id"), func(s *session.Session) error {
		opts = s.PreviewOptions()
		return nil
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, opts)
}

func (a *API) render(w http.ResponseWriter, r *http.Request, opts qrcode.Options) {
	png, err := qrcode.PNG(opts)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writePNG(w, png)
}
