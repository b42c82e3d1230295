package campaign

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relaykit/intake/pkg/catalog"
)

func TestDetermine_Defaults(t *testing.T) {
	want := map[catalog.UseCaseID]Type{
		catalog.UseCaseAppointments: TypeCustomerCare,
		catalog.UseCaseOrders:       TypeDeliveryNotices,
		catalog.UseCaseVerification: TypeTwoFactorAuth,
		catalog.UseCaseSupport:      TypeCustomerCare,
		catalog.UseCaseMarketing:    TypeMarketing,
		catalog.UseCaseInternal:     TypeLowVolume,
		catalog.UseCaseCommunity:    TypeLowVolume,
		catalog.UseCaseWaitlist:     TypeMixed,
	}

	for _, id := range catalog.KnownUseCaseIDs {
		if got := Determine(id, nil); got != want[id] {
			t.Errorf("Determine(%s, none) = %s, want %s", id, got, want[id])
		}
	}
}

func TestDetermine_Expansions(t *testing.T) {
	cases := []struct {
		name       string
		useCase    catalog.UseCaseID
		expansions []string
		want       Type
	}{
		{
			name:       "promotional expansion upgrades to mixed",
			useCase:    catalog.UseCaseAppointments,
			expansions: []string{"promotional_offers_past_clients"},
			want:       TypeMixed,
		},
		{
			name:       "review request counts as promotional",
			useCase:    catalog.UseCaseWaitlist,
			expansions: []string{"reviews_after_visits"},
			want:       TypeMixed,
		},
		{
			name:       "sponsored content counts as promotional",
			useCase:    catalog.UseCaseCommunity,
			expansions: []string{"sponsored_partner_content"},
			want:       TypeMixed,
		},
		{
			name:       "product announcements count as promotional",
			useCase:    catalog.UseCaseOrders,
			expansions: []string{"announce_new_products"},
			want:       TypeMixed,
		},
		{
			name:       "promotional wins over non-promotional",
			useCase:    catalog.UseCaseAppointments,
			expansions: []string{"birthday_anniversary", "reviews_feedback"},
			want:       TypeMixed,
		},
		{
			name:       "non-promotional expansion only",
			useCase:    catalog.UseCaseAppointments,
			expansions: []string{"birthday_anniversary"},
			want:       TypeLowVolumeMixed,
		},
		{
			name:       "verification extras stay non-promotional",
			useCase:    catalog.UseCaseVerification,
			expansions: []string{"account_notifications", "onboarding_welcome"},
			want:       TypeLowVolumeMixed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Determine(tc.useCase, tc.expansions); got != tc.want {
				t.Fatalf("Determine(%s, %v) = %s, want %s", tc.useCase, tc.expansions, got, tc.want)
			}
		})
	}
}

// The advisory predicate and the classifier's promotional test must agree
// for every expansion the catalog offers.
func TestPromotionalSetAgreement(t *testing.T) {
	for _, def := range catalog.Default().List() {
		for _, exp := range def.Expansions {
			single := []string{exp.ID}
			upgraded := Determine(def.ID, single) == TypeMixed
			advisory := HasMarketingExpansion(single)
			if upgraded != advisory {
				t.Errorf("use case %s expansion %s: classifier says promotional=%v, advisory says %v", def.ID, exp.ID, upgraded, advisory)
			}
			if advisory != IsPromotionalExpansion(exp.ID) {
				t.Errorf("expansion %s: HasMarketingExpansion and IsPromotionalExpansion disagree", exp.ID)
			}
		}
	}
}

func TestPromotionalSetCoversCatalog(t *testing.T) {
	// Every promotional id must exist somewhere in the catalog; a stale entry
	// here means the catalog and classifier drifted apart.
	for id := range promotionalExpansions {
		found := false
		for _, def := range catalog.Default().List() {
			if _, ok := def.Expansion(id); ok {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("promotional expansion %q does not exist in the catalog", id)
		}
	}
}

func TestDefaultExpansions(t *testing.T) {
	def, _ := catalog.Default().Get(catalog.UseCaseAppointments)
	got := DefaultExpansions(def)
	if diff := cmp.Diff([]string{"birthday_anniversary"}, got); diff != "" {
		t.Fatalf("default expansions mismatch (-want +got):\n%s", diff)
	}

	for _, id := range got {
		if IsPromotionalExpansion(id) {
			t.Errorf("default expansion %q must not be promotional", id)
		}
	}

	marketing, _ := catalog.Default().Get(catalog.UseCaseMarketing)
	if got := DefaultExpansions(marketing); got != nil {
		t.Fatalf("marketing offers no expansions, got %v", got)
	}
}
