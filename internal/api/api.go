package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nesaranaeem/qr-box/pkg/httpserver"
	"github.com/nesaranaeem/qr-box/pkg/i18n"
	"github.com/nesaranaeem/qr-box/pkg/logger"
	"github.com/nesaranaeem/qr-box/pkg/ratelimiter"
	"github.com/nesaranaeem/qr-box/pkg/scan"
	"github.com/nesaranaeem/qr-box/pkg/session"
)

// DefaultMaxUploadBytes caps request bodies when no limit is configured.
const DefaultMaxUploadBytes int64 = 5 << 20

// Config holds API settings loaded from the environment.
type Config struct {
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	// Per client IP; a zero burst disables rate limiting.
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"30"`
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// RateLimit returns the token bucket settings, or false when limiting is off.
func (c Config) RateLimit() (ratelimiter.Config, bool) {
	if c.RateLimitBurst <= 0 || c.RateLimitPerMinute <= 0 {
		return ratelimiter.Config{}, false
	}
	return ratelimiter.Config{
		Capacity:       c.RateLimitBurst,
		RefillRate:     c.RateLimitPerMinute,
		RefillInterval: time.Minute,
	}, true
}

// API serves the QR generator sessions, barcode classification and QR decoding over HTTP.
type API struct {
	store     session.Store
	tr        *i18n.Translator
	log       *slog.Logger
	maxUpload int64
	barcodes  scan.Decoder
	qrcodes   scan.Decoder
	checks    []httpserver.Check
	limiter   *ratelimiter.Bucket
}

// Option configures the API.
type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMaxUploadBytes limits request bodies. Non-positive values are ignored.
func WithMaxUploadBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxUpload = n
		}
	}
}

// WithDecoders replaces the barcode and QR decoders. Nil decoders are ignored.
func WithDecoders(barcodes, qrcodes scan.Decoder) Option {
	return func(a *API) {
		if barcodes != nil {
			a.barcodes = barcodes
		}
		if qrcodes != nil {
			a.qrcodes = qrcodes
		}
	}
}

// WithRateLimiter throttles session creation and image uploads per client IP.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(a *API) { a.limiter = b }
}

// WithReadinessChecks adds probes served on /readyz.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(a *API) {
		a.checks = append(a.checks, checks...)
	}
}

// New creates an API over store, translating messages with tr.
func New(store session.Store, tr *i18n.Translator, opts ...Option) *API {
	a := &API{
		store:     store,
		tr:        tr,
		log:       slog.New(slog.DiscardHandler),
		maxUpload: DefaultMaxUploadBytes,
		barcodes:  scan.NewBarcodeDecoder(),
		qrcodes:   scan.NewQRDecoder(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = slog.New(logger.NewLogHandlerDecorator(a.log.Handler(), RequestIDExtractor)).
		With(logger.Component("api"))
	a.checks = append(a.checks, httpserver.Check{Name: "locales", Fn: a.localesReady})
	return a
}

// Routes builds the router.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(a.tr.Matcher())))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { a.fail(w, r, ErrNotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { a.fail(w, r, ErrMethodNotAllowed) })

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.checks...))

	r.Route("/api", func(r chi.Router) {
		r.Use(a.limitBody)

		r.Route("/sessions", func(r chi.Router) {
			r.With(a.rateLimit("sessions")).Post("/", a.createSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getSession)
				r.Delete("/", a.deleteSession)
				r.Put("/type", a.setType)
				r.Put("/input", a.setInput)
				r.Put("/style", a.setStyle)
				r.Post("/generate", a.generate)
				r.Get("/qr.png", a.qrPNG)
				r.Get("/preview.png", a.previewPNG)
			})
		})
		r.With(a.rateLimit("uploads")).Post("/barcodes/classify", a.classify)
		r.With(a.rateLimit("uploads")).Post("/qr/decode", a.decodeQR)
	})
	return r
}

func (a *API) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, a.maxUpload)
		next.ServeHTTP(w, r)
	})
}

// rateLimit applies the limiter, if any, with a separate budget per group.
func (a *API) rateLimit(group string) func(http.Handler) http.Handler {
	if a.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return ratelimiter.Middleware(a.limiter,
		ratelimiter.Composite(ratelimiter.ByRemoteIP, ratelimiter.Static(group)),
		func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) { a.fail(w, r, ErrTooManyRequests) },
		func(w http.ResponseWriter, r *http.Request, err error) { a.fail(w, r, err) },
	)
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		a.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (a *API) localesReady(context.Context) error {
	if !a.tr.HasTranslation(a.tr.DefaultLanguage(), ErrInternal.translationKey()) {
		return errors.New("default language has no api messages")
	}
	return nil
}

// RequestIDExtractor adds the chi request id to log records.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
