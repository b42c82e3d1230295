package intake

import (
	"github.com/relaykit/intake/pkg/campaign"
	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/session"
	"github.com/relaykit/intake/pkg/templates"
	"github.com/relaykit/intake/pkg/validate"
)

// UseCaseID identifies one of the fixed messaging use cases; alias exported
// via the root package for convenience.
type UseCaseID = catalog.UseCaseID

// CampaignType is the 10DLC campaign classification code.
type CampaignType = campaign.Type

// IntakeSession carries wizard state between steps.
type IntakeSession = session.IntakeSession

// BusinessDetailsData is a validated business-details record.
type BusinessDetailsData = validate.BusinessDetailsData

// FieldErrors reports validation failures keyed by form field.
type FieldErrors = validate.FieldErrors

// UseCases returns the embedded use-case catalog.
func UseCases() *catalog.Store {
	return catalog.Default()
}

// Classify computes the campaign type for a use case and expansion
// selection.
func Classify(useCase UseCaseID, expansions []string) CampaignType {
	return campaign.Determine(useCase, expansions)
}

// ValidateDetails checks a candidate business-details record for a use case.
func ValidateDetails(useCase UseCaseID, record map[string]string) (BusinessDetailsData, FieldErrors) {
	return validate.Validate(useCase, validate.Record(record))
}

// GeneratePreview builds the carrier-facing campaign description and sample
// messages from validated details.
func GeneratePreview(useCase UseCaseID, details BusinessDetailsData) (templates.Output, error) {
	return templates.Generate(templates.Input{
		UseCase:             useCase,
		BusinessName:        details.BusinessName,
		BusinessDescription: details.BusinessDescription,
		ServiceType:         details.ServiceType,
		ProductType:         details.ProductType,
		AppName:             details.AppName,
		CommunityName:       details.CommunityName,
		VenueType:           details.VenueType,
	})
}
