package catalog

// UseCaseID identifies one of the fixed messaging use cases offered during
// intake.
type UseCaseID string

const (
	UseCaseAppointments UseCaseID = "appointments"
	UseCaseOrders       UseCaseID = "orders"
	UseCaseVerification UseCaseID = "verification"
	UseCaseSupport      UseCaseID = "support"
	UseCaseMarketing    UseCaseID = "marketing"
	UseCaseInternal     UseCaseID = "internal"
	UseCaseCommunity    UseCaseID = "community"
	UseCaseWaitlist     UseCaseID = "waitlist"
)

// KnownUseCaseIDs lists every recognised use case in display order. The
// catalog document must define exactly this set.
var KnownUseCaseIDs = []UseCaseID{
	UseCaseAppointments,
	UseCaseOrders,
	UseCaseVerification,
	UseCaseSupport,
	UseCaseMarketing,
	UseCaseInternal,
	UseCaseCommunity,
	UseCaseWaitlist,
}

// ExpansionOption is an optional add-on capability a user can select to
// broaden a use case's permitted messaging scope.
type ExpansionOption struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// ScopeItem is a single statement about what a registration does not cover.
// When any expansion listed in UnlockedBy is selected the item is presented
// as covered instead.
type ScopeItem struct {
	Text       string   `yaml:"text"`
	UnlockedBy []string `yaml:"unlocked_by,omitempty"`
}

// UseCaseDefinition describes one selectable use case: its display copy, the
// messaging scope it grants, and the expansions it offers.
type UseCaseDefinition struct {
	ID          UseCaseID         `yaml:"id"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
	Included    []string          `yaml:"included"`
	NotIncluded []ScopeItem       `yaml:"not_included,omitempty"`
	Expansions  []ExpansionOption `yaml:"expansions,omitempty"`
}

// Expansion returns the expansion option with the given id, if the use case
// offers it.
func (d UseCaseDefinition) Expansion(id string) (ExpansionOption, bool) {
	for _, exp := range d.Expansions {
		if exp.ID == id {
			return exp, true
		}
	}
	return ExpansionOption{}, false
}

// ScopeStatus is the resolved presentation of a use case's scope for a given
// expansion selection: items unlocked by the selection appear under Included.
type ScopeStatus struct {
	Included    []string
	NotIncluded []string
}

// ResolveScope computes the scope presentation for the selected expansion
// ids. Selected ids that the use case does not offer are ignored.
func ResolveScope(def UseCaseDefinition, selected []string) ScopeStatus {
	chosen := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := def.Expansion(id); ok {
			chosen[id] = struct{}{}
		}
	}

	status := ScopeStatus{Included: append([]string{}, def.Included...)}
	for _, item := range def.NotIncluded {
		unlocked := false
		for _, id := range item.UnlockedBy {
			if _, ok := chosen[id]; ok {
				unlocked = true
				break
			}
		}
		if unlocked {
			status.Included = append(status.Included, item.Text)
		} else {
			status.NotIncluded = append(status.NotIncluded, item.Text)
		}
	}
	return status
}
