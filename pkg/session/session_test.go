package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relaykit/intake/pkg/catalog"
)

func TestMerge(t *testing.T) {
	base := IntakeSession{
		UseCase:      catalog.UseCaseAppointments,
		Expansions:   []string{"reviews_feedback"},
		CampaignType: "MIXED",
		BusinessDetails: map[string]string{
			"business_name": "Acme",
			"email":         "a@acme.com",
		},
	}

	t.Run("unset fields survive", func(t *testing.T) {
		got := base.Merge(IntakeSession{CampaignType: "LOW_VOLUME_MIXED"})
		want := base
		want.CampaignType = "LOW_VOLUME_MIXED"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-nil empty expansions clear the selection", func(t *testing.T) {
		got := base.Merge(IntakeSession{Expansions: []string{}})
		if len(got.Expansions) != 0 || got.Expansions == nil {
			t.Fatalf("expected cleared but set expansions, got %#v", got.Expansions)
		}
	})

	t.Run("business details merge key-wise", func(t *testing.T) {
		got := base.Merge(IntakeSession{BusinessDetails: map[string]string{
			"email": "b@acme.com",
			"phone": "5551234567",
		}})
		want := map[string]string{
			"business_name": "Acme",
			"email":         "b@acme.com",
			"phone":         "5551234567",
		}
		if diff := cmp.Diff(want, got.BusinessDetails); diff != "" {
			t.Fatalf("details merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("merge does not mutate the receiver", func(t *testing.T) {
		_ = base.Merge(IntakeSession{BusinessDetails: map[string]string{"email": "x@acme.com"}})
		if base.BusinessDetails["email"] != "a@acme.com" {
			t.Fatalf("receiver mutated: %v", base.BusinessDetails)
		}
	})
}

func TestIsZero(t *testing.T) {
	if !(IntakeSession{}).IsZero() {
		t.Fatalf("empty session should be zero")
	}
	if (IntakeSession{UseCase: catalog.UseCaseOrders}).IsZero() {
		t.Fatalf("session with a use case is not zero")
	}
}
