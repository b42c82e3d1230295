package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	files     fs.FS
	extension string
	globals   map[string]any
}

// WithFS loads templates from an fs.FS, usually an embed.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension overrides the default ".html" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobals seeds context values available to every template.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Engine renders wizard pages from a pongo2 template set. Parsed templates
// are cached after first use.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	extension string
}

// New constructs an Engine from the provided options. A template source is
// required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".html"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.files == nil {
		return nil, errors.New("render: template fs.FS is required")
	}

	set := pongo2.NewSet("intake", pongo2.NewFSLoader(cfg.files))
	if len(cfg.globals) > 0 {
		set.Globals = pongo2.Context(cfg.globals)
	}

	return &Engine{
		set:       set,
		templates: make(map[string]*pongo2.Template),
		extension: cfg.extension,
	}, nil
}

// Render executes the named template with data and writes the result to out.
// Struct data is flattened through JSON so templates see field names by their
// json tags.
func (e *Engine) Render(out io.Writer, name string, data any) error {
	if e == nil || e.set == nil {
		return errors.New("render: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.template(path)
	if err != nil {
		return err
	}

	ctx, err := toContext(data)
	if err != nil {
		return fmt.Errorf("render: convert data for %q: %w", path, err)
	}

	// Buffer the full page so a mid-render failure never leaks a partial
	// response body.
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return fmt.Errorf("render: execute %q: %w", path, err)
	}
	_, err = out.Write(buf.Bytes())
	return err
}

// RenderString parses and executes inline template content. Tests and the
// terminal wizard use it for one-off fragments.
func (e *Engine) RenderString(content string, data any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("render: parse inline template: %w", err)
	}
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("render: convert inline data: %w", err)
	}
	return tmpl.Execute(ctx)
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
		return pongo2.Context(out), nil
	}
}
