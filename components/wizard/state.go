package wizard

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/relaykit/intake/internal/render"
	"github.com/relaykit/intake/pkg/session"
)

type handlers struct {
	opts   Options
	engine *render.Engine
	base   string
}

// sessionID returns the request's session id, minting a cookie when the
// request has none yet.
func (h *handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(h.opts.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// resolveState merges the query string over the stored session. The query
// always wins so shared or bookmarked links behave the same for everyone.
func (h *handlers) resolveState(w http.ResponseWriter, r *http.Request) (string, session.IntakeSession) {
	sid := h.sessionID(w, r)
	fromURL := session.DecodeQuery(r.URL.Query())
	stored := h.opts.Sessions.Load(r.Context(), sid)
	return sid, session.ResolveSession(fromURL, stored)
}

// page renders the named template and writes it with the given status. A
// render failure becomes a plain 500; the page is buffered so a failure
// never emits a partial body.
func (h *handlers) page(w http.ResponseWriter, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["base"] = h.base
	if h.base == "" {
		data["home"] = "/"
	} else {
		data["home"] = h.base
	}

	var buf bytes.Buffer
	if err := h.engine.Render(&buf, name, data); err != nil {
		h.opts.Logger.Error("render page", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// recovery is the fallback screen for steps reached without a usable use
// case. It is a normal 200 page pointing back to step one.
func (h *handlers) recovery(w http.ResponseWriter, message string) {
	h.page(w, http.StatusOK, "recover", map[string]any{
		"message": message,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// typeLabels maps campaign type codes to the copy shown on the scope step.
var typeLabels = map[string]string{
	"CUSTOMER_CARE":             "Customer care",
	"DELIVERY_NOTIFICATIONS":    "Delivery notifications",
	"TWO_FACTOR_AUTHENTICATION": "Two-factor authentication",
	"MARKETING":                 "Marketing",
	"LOW_VOLUME":                "Low volume",
	"MIXED":                     "Mixed",
	"LOW_VOLUME_MIXED":          "Low volume mixed",
}

func typeLabel(code string) string {
	if label, ok := typeLabels[code]; ok {
		return label
	}
	return code
}
