package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault_ListOrder(t *testing.T) {
	store := Default()

	if store.Len() != len(KnownUseCaseIDs) {
		t.Fatalf("expected %d use cases, got %d", len(KnownUseCaseIDs), store.Len())
	}

	var got []UseCaseID
	for _, def := range store.List() {
		got = append(got, def.ID)
	}
	if diff := cmp.Diff(KnownUseCaseIDs, got); diff != "" {
		t.Fatalf("display order mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_Get(t *testing.T) {
	store := Default()

	def, ok := store.Get(UseCaseAppointments)
	if !ok {
		t.Fatalf("expected appointments to resolve")
	}
	if def.Label != "Appointment reminders" {
		t.Fatalf("unexpected label %q", def.Label)
	}
	if len(def.Expansions) != 3 {
		t.Fatalf("expected 3 expansions, got %d", len(def.Expansions))
	}

	if _, ok := store.Get("carrier_pigeon"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestDefault_UnlockReferencesExist(t *testing.T) {
	for _, def := range Default().List() {
		for _, item := range def.NotIncluded {
			for _, ref := range item.UnlockedBy {
				if _, ok := def.Expansion(ref); !ok {
					t.Errorf("use case %s: scope item %q references unknown expansion %q", def.ID, item.Text, ref)
				}
			}
		}
	}
}

func TestDefault_MarketingHasNoExpansions(t *testing.T) {
	def, _ := Default().Get(UseCaseMarketing)
	if len(def.Expansions) != 0 || len(def.NotIncluded) != 0 {
		t.Fatalf("marketing is the broadest category and offers no expansions, got %d/%d", len(def.Expansions), len(def.NotIncluded))
	}
}

func TestResolveScope(t *testing.T) {
	def, _ := Default().Get(UseCaseAppointments)

	t.Run("no selection", func(t *testing.T) {
		status := ResolveScope(def, nil)
		if len(status.Included) != len(def.Included) {
			t.Fatalf("expected %d included items, got %d", len(def.Included), len(status.Included))
		}
		if len(status.NotIncluded) != len(def.NotIncluded) {
			t.Fatalf("expected %d excluded items, got %d", len(def.NotIncluded), len(status.NotIncluded))
		}
	})

	t.Run("expansion unlocks items", func(t *testing.T) {
		status := ResolveScope(def, []string{"promotional_offers_past_clients"})
		want := ScopeStatus{
			Included: append(append([]string{}, def.Included...),
				"Marketing offers or discount codes",
				"Promotional announcements",
			),
			NotIncluded: []string{"Review requests"},
		}
		if diff := cmp.Diff(want, status); diff != "" {
			t.Fatalf("scope mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown expansion ignored", func(t *testing.T) {
		status := ResolveScope(def, []string{"not_a_real_expansion"})
		if len(status.NotIncluded) != len(def.NotIncluded) {
			t.Fatalf("unknown expansion must not unlock anything")
		}
	})
}

func TestLoad_Failures(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "empty document",
			doc:  "use_cases: []\n",
			want: "no use cases",
		},
		{
			name: "unknown id",
			doc: `use_cases:
  - id: telegrams
    label: Telegrams
    description: Old school
    included: [Anything]
`,
			want: "unrecognised use case",
		},
		{
			name: "dangling unlock reference",
			doc: `use_cases:
  - id: appointments
    label: Appointment reminders
    description: Confirmations
    included: [Reminders]
    not_included:
      - text: Marketing offers
        unlocked_by: [does_not_exist]
`,
			want: "references unknown expansion",
		},
		{
			name: "duplicate expansion",
			doc: `use_cases:
  - id: appointments
    label: Appointment reminders
    description: Confirmations
    included: [Reminders]
    expansions:
      - id: reviews_feedback
        label: Reviews
      - id: reviews_feedback
        label: Reviews again
`,
			want: "duplicate expansion",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.doc))
			if err == nil {
				t.Fatalf("expected load to fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
