package wizard

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/session"
)

// GuardFunc can reject a request before any wizard handler runs. Return an
// error satisfying HTTPError to control the status code.
type GuardFunc func(r *http.Request) error

type Options struct {
	// Catalog provides the use-case definitions. Defaults to the embedded
	// catalog.
	Catalog *catalog.Store

	// Sessions persists intake state between requests. Defaults to an
	// in-memory carrier, which is enough for a single instance.
	Sessions *session.Carrier

	Logger *zap.Logger

	// CookieName holds the opaque session identifier.
	CookieName string

	// Settings for the GET api/states endpoint.
	SearchParam  string
	LimitParam   string
	DefaultLimit int
	MaxLimit     int

	Guard GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		CookieName:   "relaykit_sid",
		SearchParam:  "q",
		LimitParam:   "limit",
		DefaultLimit: 50,
		MaxLimit:     200,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Sessions == nil {
		opts.Sessions = session.NewCarrier(session.NewMemoryStore(), opts.Logger)
	}
	if opts.CookieName == "" {
		opts.CookieName = "relaykit_sid"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	return opts
}

func WithCatalog(store *catalog.Store) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = store
	}
}

func WithSessions(carrier *session.Carrier) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sessions = carrier
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

func WithCookieName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CookieName = name
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
