// Package campaign classifies an intake selection into the campaign type
// code submitted with a 10DLC carrier registration.
package campaign

import "github.com/relaykit/intake/pkg/catalog"

// Type is a campaign classification code.
type Type string

const (
	TypeCustomerCare    Type = "CUSTOMER_CARE"
	TypeDeliveryNotices Type = "DELIVERY_NOTIFICATIONS"
	TypeTwoFactorAuth   Type = "TWO_FACTOR_AUTHENTICATION"
	TypeMarketing       Type = "MARKETING"
	TypeLowVolume       Type = "LOW_VOLUME"
	TypeMixed           Type = "MIXED"
	TypeLowVolumeMixed  Type = "LOW_VOLUME_MIXED"
)

// DefaultTypes maps each use case to the campaign type it registers as when
// no expansions are selected.
var DefaultTypes = map[catalog.UseCaseID]Type{
	catalog.UseCaseAppointments: TypeCustomerCare,
	catalog.UseCaseOrders:       TypeDeliveryNotices,
	catalog.UseCaseVerification: TypeTwoFactorAuth,
	catalog.UseCaseSupport:      TypeCustomerCare,
	catalog.UseCaseMarketing:    TypeMarketing,
	catalog.UseCaseInternal:     TypeLowVolume,
	catalog.UseCaseCommunity:    TypeLowVolume,
	catalog.UseCaseWaitlist:     TypeMixed,
}

// promotionalExpansions enumerates every expansion id, across all use cases,
// that adds marketing, promotional, or sponsored-content capability.
// Determine and HasMarketingExpansion share this set; the two must never
// diverge.
var promotionalExpansions = map[string]struct{}{
	"promotional_offers_past_clients":     {},
	"reviews_feedback":                    {},
	"promotional_offers_past_customers":   {},
	"announce_new_products":               {},
	"reviews_after_delivery":              {},
	"promotional_offers_support_contacts": {},
	"sponsored_partner_content":           {},
	"promotional_offers_past_guests":      {},
	"announce_availability_events":        {},
	"reviews_after_visits":                {},
}

// IsPromotionalExpansion reports whether the expansion id adds promotional
// capability.
func IsPromotionalExpansion(id string) bool {
	_, ok := promotionalExpansions[id]
	return ok
}

// HasMarketingExpansion reports whether any selected expansion is
// promotional. The scope step uses it to surface the marketing consent
// advisory.
func HasMarketingExpansion(expansions []string) bool {
	for _, id := range expansions {
		if IsPromotionalExpansion(id) {
			return true
		}
	}
	return false
}

// Determine resolves the effective campaign type for a use case and the
// selected expansion ids. With no expansions the use case's default applies;
// a promotional expansion upgrades the registration to MIXED; any other
// expansion yields LOW_VOLUME_MIXED.
func Determine(useCase catalog.UseCaseID, expansions []string) Type {
	if len(expansions) == 0 {
		return DefaultTypes[useCase]
	}
	if HasMarketingExpansion(expansions) {
		return TypeMixed
	}
	return TypeLowVolumeMixed
}

// DefaultExpansions returns the expansion ids the scope step preselects for
// a use case: everything except promotional add-ons, which stay opt-in.
func DefaultExpansions(def catalog.UseCaseDefinition) []string {
	var out []string
	for _, exp := range def.Expansions {
		if !IsPromotionalExpansion(exp.ID) {
			out = append(out, exp.ID)
		}
	}
	return out
}
