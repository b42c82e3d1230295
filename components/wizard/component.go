package wizard

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/relaykit/intake/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Component bundles the wizard handlers, their configuration, and routing
// helpers.
type Component struct {
	opts   Options
	engine *render.Engine
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)

	templates, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("wizard: template fs: %w", err)
	}
	engine, err := render.New(
		render.WithFS(templates),
		render.WithGlobals(map[string]any{"product": "RelayKit"}),
	)
	if err != nil {
		return nil, fmt.Errorf("wizard: build renderer: %w", err)
	}

	return &Component{opts: opts, engine: engine}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return NewOptions(func(o *Options) { *o = c.opts })
}
