package wizard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/relaykit/intake/pkg/validate"
)

func decodeOptions(t *testing.T, rec *httptest.ResponseRecorder) []validate.Option {
	t.Helper()
	var payload optionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload.Data
}

func TestAPIStates_Search(t *testing.T) {
	mux, _ := newTestWizard(t)
	rec := get(t, mux, "/start/api/states?q=dakota")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	options := decodeOptions(t, rec)
	if len(options) != 2 {
		t.Fatalf("expected 2 Dakota matches, got %#v", options)
	}
	if options[0].ID != "ND" || options[1].ID != "SD" {
		t.Fatalf("unexpected order: %#v", options)
	}
}

func TestAPIStates_CodePrefixWins(t *testing.T) {
	mux, _ := newTestWizard(t)
	rec := get(t, mux, "/start/api/states?q=tx&limit=3")

	options := decodeOptions(t, rec)
	if len(options) == 0 || options[0].ID != "TX" {
		t.Fatalf("expected TX first, got %#v", options)
	}
}

func TestAPIStates_LimitClamped(t *testing.T) {
	mux, _ := newTestWizard(t)
	rec := get(t, mux, "/start/api/states?q=a&limit=100000")

	options := decodeOptions(t, rec)
	if len(options) > 200 {
		t.Fatalf("limit not clamped, got %d results", len(options))
	}
}

func TestAPIStates_EmptyQueryReturnsLeadingOptions(t *testing.T) {
	mux, _ := newTestWizard(t)
	rec := get(t, mux, "/start/api/states")

	options := decodeOptions(t, rec)
	if len(options) != 50 {
		t.Fatalf("expected default limit of 50 options, got %d", len(options))
	}
	if options[0].ID != "AL" {
		t.Fatalf("expected display order preserved, got %#v", options[0])
	}
}

func TestAPIUseCases(t *testing.T) {
	mux, _ := newTestWizard(t)
	rec := get(t, mux, "/start/api/use-cases")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload useCasesResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data) != 8 {
		t.Fatalf("expected 8 use cases, got %d", len(payload.Data))
	}
	first := payload.Data[0]
	if first.ID != "appointments" || first.DefaultCampaignType != "CUSTOMER_CARE" {
		t.Fatalf("unexpected first use case: %#v", first)
	}
}

func TestGuardRejectsRequests(t *testing.T) {
	component, err := New(WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized}
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mux := http.NewServeMux()
	if _, err := component.RegisterRoutes(mux, "/start"); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	rec := get(t, mux, "/start/api/states?q=tx")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from guard, got %d", rec.Code)
	}
}
