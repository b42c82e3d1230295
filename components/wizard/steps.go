package wizard

import (
	"net/http"
	"strings"

	"github.com/relaykit/intake/pkg/campaign"
	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/session"
)

const (
	msgNoUseCase   = "No use case selected. Please go back and pick one."
	msgMissingData = "Missing intake data. Please start from the beginning."
)

// useCases renders step one: the use-case tile grid.
func (h *handlers) useCases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	h.sessionID(w, r)

	tiles := make([]map[string]any, 0, h.opts.Catalog.Len())
	for _, def := range h.opts.Catalog.List() {
		tiles = append(tiles, map[string]any{
			"id":          string(def.ID),
			"label":       def.Label,
			"description": def.Description,
		})
	}
	h.page(w, http.StatusOK, "usecases", map[string]any{
		"use_cases": tiles,
	})
}

// scope renders and processes step two: scope confirmation plus expansion
// selection.
func (h *handlers) scope(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.scopeGet(w, r)
	case http.MethodPost:
		h.scopePost(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodPost)
	}
}

func (h *handlers) scopeGet(w http.ResponseWriter, r *http.Request) {
	_, state := h.resolveState(w, r)
	def, ok := h.opts.Catalog.Get(state.UseCase)
	if !ok {
		h.recovery(w, msgNoUseCase)
		return
	}

	// A nil selection means the user has not touched this step yet, so
	// every non-promotional expansion starts checked.
	selected := state.Expansions
	if selected == nil {
		selected = campaign.DefaultExpansions(def)
	}
	h.renderScope(w, http.StatusOK, def, selected)
}

func (h *handlers) scopePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sid, _ := h.resolveState(w, r)

	def, ok := h.opts.Catalog.Get(catalog.UseCaseID(r.PostForm.Get("use_case")))
	if !ok {
		h.recovery(w, msgNoUseCase)
		return
	}

	// Keep only expansions this use case actually offers.
	selected := make([]string, 0, len(r.PostForm["expansions"]))
	for _, id := range r.PostForm["expansions"] {
		id = strings.TrimSpace(id)
		if _, ok := def.Expansion(id); ok {
			selected = append(selected, id)
		}
	}

	update := session.IntakeSession{
		UseCase:      def.ID,
		Expansions:   selected,
		CampaignType: string(campaign.Determine(def.ID, selected)),
	}
	h.opts.Sessions.Save(r.Context(), sid, update)

	next := h.base + "/details?" + session.EncodeQuery(update).Encode()
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *handlers) renderScope(w http.ResponseWriter, status int, def catalog.UseCaseDefinition, selected []string) {
	scope := catalog.ResolveScope(def, selected)
	campaignType := string(campaign.Determine(def.ID, selected))

	checked := make(map[string]bool, len(selected))
	for _, id := range selected {
		checked[id] = true
	}
	expansions := make([]map[string]any, 0, len(def.Expansions))
	for _, exp := range def.Expansions {
		expansions = append(expansions, map[string]any{
			"id":      exp.ID,
			"label":   exp.Label,
			"checked": checked[exp.ID],
		})
	}

	h.page(w, status, "scope", map[string]any{
		"use_case":            useCaseContext(def),
		"included":            scope.Included,
		"not_included":        scope.NotIncluded,
		"expansions":          expansions,
		"campaign_type":       campaignType,
		"campaign_type_label": typeLabel(campaignType),
		"show_promo_note":     campaign.HasMarketingExpansion(selected),
		"is_marketing":        def.ID == catalog.UseCaseMarketing,
	})
}

func useCaseContext(def catalog.UseCaseDefinition) map[string]any {
	return map[string]any{
		"id":    string(def.ID),
		"label": def.Label,
	}
}
