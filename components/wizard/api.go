package wizard

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/relaykit/intake/pkg/campaign"
	"github.com/relaykit/intake/pkg/validate"
)

type optionsResponse struct {
	Data []validate.Option `json:"data"`
}

type useCaseOption struct {
	ID                  string `json:"id"`
	Label               string `json:"label"`
	Description         string `json:"description"`
	DefaultCampaignType string `json:"default_campaign_type"`
}

type useCasesResponse struct {
	Data []useCaseOption `json:"data"`
}

// apiStates serves searchable US state options for the address form.
func (h *handlers) apiStates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	query := r.URL.Query().Get(h.opts.SearchParam)
	limit := parseInt(r.URL.Query().Get(h.opts.LimitParam))

	results := searchStates(validate.StateOptions, query, limit, h.opts)
	if results == nil {
		results = []validate.Option{}
	}
	writeJSON(w, r, optionsResponse{Data: results})
}

// apiUseCases enumerates the catalog with each use case's default campaign
// type.
func (h *handlers) apiUseCases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	out := make([]useCaseOption, 0, h.opts.Catalog.Len())
	for _, def := range h.opts.Catalog.List() {
		out = append(out, useCaseOption{
			ID:                  string(def.ID),
			Label:               def.Label,
			Description:         def.Description,
			DefaultCampaignType: string(campaign.DefaultTypes[def.ID]),
		})
	}
	writeJSON(w, r, useCasesResponse{Data: out})
}

// searchStates filters options by substring against code and label, listing
// prefix matches first. An empty query returns the leading options up to the
// limit.
func searchStates(options []validate.Option, query string, limit int, opts Options) []validate.Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if len(options) <= limit {
			return append([]validate.Option{}, options...)
		}
		return append([]validate.Option{}, options[:limit]...)
	}

	type match struct {
		option   validate.Option
		isPrefix bool
	}
	matches := make([]match, 0, 16)
	for _, opt := range options {
		code := strings.ToLower(opt.ID)
		label := strings.ToLower(opt.Label)
		if !strings.Contains(code, query) && !strings.Contains(label, query) {
			continue
		}
		matches = append(matches, match{
			option:   opt,
			isPrefix: strings.HasPrefix(code, query) || strings.HasPrefix(label, query),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].option.Label < matches[j].option.Label
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]validate.Option, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.option)
	}
	return out
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
