package wizard

import (
	"net/http"
	"strings"

	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/session"
	"github.com/relaykit/intake/pkg/validate"
)

// details renders and processes step three: the business-details form.
func (h *handlers) details(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.detailsGet(w, r)
	case http.MethodPost:
		h.detailsPost(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodHead, http.MethodPost)
	}
}

func (h *handlers) detailsGet(w http.ResponseWriter, r *http.Request) {
	_, state := h.resolveState(w, r)
	def, ok := h.opts.Catalog.Get(state.UseCase)
	if !ok {
		h.recovery(w, msgNoUseCase)
		return
	}

	values := displayValues(state.BusinessDetails)
	h.renderDetails(w, http.StatusOK, def, state, values, nil)
}

func (h *handlers) detailsPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	sid, state := h.resolveState(w, r)
	// The form carries the scope selection in hidden fields, so the step
	// keeps working on posted state alone when the store is unavailable.
	state = session.ResolveSession(session.DecodeQuery(r.PostForm), state)

	def, ok := h.opts.Catalog.Get(state.UseCase)
	if !ok {
		h.recovery(w, msgNoUseCase)
		return
	}

	// A submission counts every field, so an untouched radio group still
	// gets its required-field message on re-render.
	record := validate.Record{}
	for _, name := range validate.DetailFieldNames {
		record[name] = strings.TrimSpace(r.PostForm.Get(name))
	}

	data, errs := validate.Validate(def.ID, record)
	if !errs.Valid() {
		values := displayValues(map[string]string(record))
		h.renderDetails(w, http.StatusUnprocessableEntity, def, state, values, errs)
		return
	}

	update := session.IntakeSession{
		UseCase:         def.ID,
		Expansions:      state.Expansions,
		CampaignType:    state.CampaignType,
		BusinessDetails: map[string]string(data.Record()),
	}
	h.opts.Sessions.Save(r.Context(), sid, update)

	next := h.base + "/review?" + session.EncodeQuery(update).Encode()
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *handlers) renderDetails(w http.ResponseWriter, status int, def catalog.UseCaseDefinition, state session.IntakeSession, values map[string]string, errs validate.FieldErrors) {
	fieldErrors := map[string]string{}
	for _, fe := range errs {
		fieldErrors[fe.Field] = fe.Message
	}

	var extraField map[string]any
	if spec, ok := validate.UseCaseField(def.ID); ok {
		extraField = map[string]any{
			"name":        spec.Name,
			"label":       spec.Label,
			"placeholder": spec.Placeholder,
			"required":    spec.Required,
			"value":       values[spec.Name],
			"error":       fieldErrors[spec.Name],
		}
	}

	backQuery := session.EncodeQuery(session.IntakeSession{
		UseCase:      def.ID,
		Expansions:   state.Expansions,
		CampaignType: state.CampaignType,
	}).Encode()

	h.page(w, status, "details", map[string]any{
		"use_case":       useCaseContext(def),
		"expansions":     strings.Join(state.Expansions, ","),
		"campaign_type":  state.CampaignType,
		"values":         values,
		"errors":         fieldErrors,
		"extra_field":    extraField,
		"states":         validate.StateOptions,
		"business_types": validate.BusinessTypeOptions,
		"back_query":     backQuery,
	})
}

// displayValues formats stored raw values for form redisplay.
func displayValues(details map[string]string) map[string]string {
	values := make(map[string]string, len(details))
	for key, value := range details {
		values[key] = value
	}
	if v := values["phone"]; v != "" {
		values["phone"] = validate.FormatPhone(v)
	}
	if v := values["ein"]; v != "" {
		values["ein"] = validate.FormatEIN(v)
	}
	return values
}
