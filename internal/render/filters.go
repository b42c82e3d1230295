package render

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/relaykit/intake/pkg/templates"
)

func init() {
	registerFilter("slug", filterSlug)
	registerFilter("trim", filterTrim)
}

// registerFilter tolerates repeated registration so multiple engines can
// coexist in one process.
func registerFilter(name string, fn pongo2.FilterFunction) {
	if pongo2.FilterExists(name) {
		return
	}
	_ = pongo2.RegisterFilter(name, fn)
}

func filterSlug(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(templates.ComplianceSlug(in.String())), nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
