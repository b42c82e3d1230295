package wizard

import (
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/session"
	"github.com/relaykit/intake/pkg/templates"
	"github.com/relaykit/intake/pkg/validate"
)

// Manual edits on the review screen live in the session under these keys so
// they survive navigation but never ride in the URL.
var overrideKeys = map[string]string{
	"campaign_description": "override_campaign_description",
	"sample_message_1":     "override_sample_message_1",
	"sample_message_2":     "override_sample_message_2",
	"sample_message_3":     "override_sample_message_3",
}

// sanitizer strips markup from user-entered override text before it is
// stored and echoed back.
var sanitizer = bluemonday.StrictPolicy()

// review renders step four and handles per-group override edits.
func (h *handlers) review(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.reviewGet(w, r)
	case http.MethodPost:
		h.reviewPost(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodPost)
	}
}

func (h *handlers) reviewGet(w http.ResponseWriter, r *http.Request) {
	_, state := h.resolveState(w, r)
	def, ok := h.opts.Catalog.Get(state.UseCase)
	if !ok {
		h.recovery(w, msgMissingData)
		return
	}
	details := state.BusinessDetails
	if details["business_name"] == "" {
		h.recovery(w, msgMissingData)
		return
	}

	generated, err := templates.Generate(templates.Input{
		UseCase:             def.ID,
		BusinessName:        details["business_name"],
		BusinessDescription: details["business_description"],
		ServiceType:         details["service_type"],
		ProductType:         details["product_type"],
		AppName:             details["app_name"],
		CommunityName:       details["community_name"],
		VenueType:           details["venue_type"],
	})
	if err != nil {
		h.recovery(w, msgMissingData)
		return
	}

	businessType := "Sole Proprietor"
	if details["has_ein"] == "yes" && details["business_type"] != "" {
		businessType = details["business_type"]
	}

	addressParts := []string{}
	for _, part := range []string{
		details["address_line1"],
		details["address_city"],
		strings.TrimSpace(details["address_state"] + " " + details["address_zip"]),
	} {
		if part != "" {
			addressParts = append(addressParts, part)
		}
	}

	expansionLabels := []string{}
	for _, id := range state.Expansions {
		if exp, ok := def.Expansion(id); ok {
			expansionLabels = append(expansionLabels, exp.Label)
		}
	}
	scope := catalog.ResolveScope(def, state.Expansions)

	groups := []map[string]any{
		reviewGroup("campaign_description", "Campaign description", generated.CampaignDescription, "", details),
		reviewGroup("sample_message_1", generated.MessageLabels[0], generated.SampleMessages[0], "Sample messages", details),
		reviewGroup("sample_message_2", generated.MessageLabels[1], generated.SampleMessages[1], "", details),
		reviewGroup("sample_message_3", generated.MessageLabels[2], generated.SampleMessages[2], "", details),
	}

	stateQuery := session.EncodeQuery(state).Encode()
	h.page(w, http.StatusOK, "review", map[string]any{
		"use_case":         useCaseContext(def),
		"business_name":    details["business_name"],
		"business_type":    businessType,
		"contact_name":     details["contact_name"],
		"email":            details["email"],
		"phone":            validate.FormatPhone(details["phone"]),
		"address":          strings.Join(addressParts, ", "),
		"groups":           groups,
		"compliance_host":  templates.ComplianceSlug(details["business_name"]) + ".relaykit.co",
		"expansion_labels": expansionLabels,
		"included":         scope.Included,
		"not_included":     scope.NotIncluded,
		"state_query":      stateQuery,
		"edit_query":       stateQuery,
	})
}

// reviewGroup resolves one editable block: the generated baseline plus any
// stored override.
func reviewGroup(name, label, generated, section string, details map[string]string) map[string]any {
	value := generated
	overridden := false
	if v := details[overrideKeys[name]]; v != "" {
		value = v
		overridden = true
	}
	return map[string]any{
		"name":       name,
		"label":      label,
		"section":    section,
		"value":      value,
		"generated":  generated,
		"overridden": overridden,
	}
}

func (h *handlers) reviewPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sid, state := h.resolveState(w, r)
	if _, ok := h.opts.Catalog.Get(state.UseCase); !ok {
		h.recovery(w, msgMissingData)
		return
	}

	group := r.PostForm.Get("group")
	key, ok := overrideKeys[group]
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	value := ""
	if r.PostForm.Get("action") != "revert" {
		value = strings.TrimSpace(sanitizer.Sanitize(r.PostForm.Get("value")))
	}
	h.opts.Sessions.Save(r.Context(), sid, session.IntakeSession{
		BusinessDetails: map[string]string{key: value},
	})

	next := h.base + "/review?" + session.EncodeQuery(state).Encode()
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// payment is a stub endpoint: it only acknowledges the submission.
func (h *handlers) payment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	_, state := h.resolveState(w, r)
	if _, ok := h.opts.Catalog.Get(state.UseCase); !ok {
		h.recovery(w, msgMissingData)
		return
	}
	h.page(w, http.StatusOK, "payment", map[string]any{
		"business_name": state.BusinessDetails["business_name"],
	})
}
