package validate

import "github.com/relaykit/intake/pkg/catalog"

// DetailFieldNames lists every business-detail field in form (and report)
// order. The session codec serializes these names verbatim as query
// parameters.
var DetailFieldNames = []string{
	"business_name",
	"business_description",
	"has_ein",
	"ein",
	"business_type",
	"contact_name",
	"email",
	"phone",
	"address_line1",
	"address_city",
	"address_state",
	"address_zip",
	"website_url",
	"service_type",
	"product_type",
	"app_name",
	"community_name",
	"venue_type",
}

// FieldSpec describes the extra business-detail field a use case asks for.
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Required    bool
}

var useCaseFields = map[catalog.UseCaseID]FieldSpec{
	catalog.UseCaseAppointments: {
		Name:        "service_type",
		Label:       "What type of service do your customers book?",
		Placeholder: "e.g., dental, hair salon, consulting, auto repair",
		Required:    true,
	},
	catalog.UseCaseOrders: {
		Name:        "product_type",
		Label:       "What do you sell/deliver?",
		Placeholder: "e.g., clothing, food delivery, handmade goods",
		Required:    true,
	},
	// The app name stays optional: verification senders without a separate
	// app brand register under the business name.
	catalog.UseCaseVerification: {
		Name:        "app_name",
		Label:       "App name (if different from business)",
		Placeholder: "The name users see when they get a code",
		Required:    false,
	},
	catalog.UseCaseCommunity: {
		Name:        "community_name",
		Label:       "Community or group name",
		Placeholder: "e.g., Local Runners Club, Beta Testers",
		Required:    true,
	},
	catalog.UseCaseWaitlist: {
		Name:        "venue_type",
		Label:       "Type of venue/business",
		Placeholder: "e.g., restaurant, barbershop, clinic",
		Required:    true,
	},
}

// UseCaseField returns the extra field the use case collects, when it has
// one. Support, marketing, and internal alerts ask for nothing beyond the
// shared form.
func UseCaseField(id catalog.UseCaseID) (FieldSpec, bool) {
	spec, ok := useCaseFields[id]
	return spec, ok
}
