package wizard

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes mounts the wizard under basePath on mux and returns the
// effective base path. basePath "" or "/" mounts at the root.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("wizard: missing mux")
	}

	base := cleanBasePath(basePath)
	h := &handlers{opts: c.opts, engine: c.engine, base: base}

	mount := base
	if mount == "" {
		mount = "/"
	}
	mux.Handle(mount, h.guarded(h.useCases))
	mux.Handle(base+"/scope", h.guarded(h.scope))
	mux.Handle(base+"/details", h.guarded(h.details))
	mux.Handle(base+"/review", h.guarded(h.review))
	mux.Handle(base+"/review/payment", h.guarded(h.payment))
	mux.Handle(base+"/api/states", h.guarded(h.apiStates))
	mux.Handle(base+"/api/use-cases", h.guarded(h.apiUseCases))

	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return "", fmt.Errorf("wizard: static fs: %w", err)
	}
	prefix := base + "/static/"
	mux.Handle(prefix, http.StripPrefix(prefix, http.FileServerFS(assets)))

	return mount, nil
}

func cleanBasePath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return ""
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/")
}

func (h *handlers) guarded(fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.opts.Guard != nil {
			if err := h.opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		fn(w, r)
	})
}
