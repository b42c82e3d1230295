package validate

// Option pairs a stored value with its display label, for rendering select
// inputs.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// StateOptions lists the 51 US state and DC codes accepted for the business
// address, in display order.
var StateOptions = []Option{
	{ID: "AL", Label: "Alabama"},
	{ID: "AK", Label: "Alaska"},
	{ID: "AZ", Label: "Arizona"},
	{ID: "AR", Label: "Arkansas"},
	{ID: "CA", Label: "California"},
	{ID: "CO", Label: "Colorado"},
	{ID: "CT", Label: "Connecticut"},
	{ID: "DE", Label: "Delaware"},
	{ID: "DC", Label: "District of Columbia"},
	{ID: "FL", Label: "Florida"},
	{ID: "GA", Label: "Georgia"},
	{ID: "HI", Label: "Hawaii"},
	{ID: "ID", Label: "Idaho"},
	{ID: "IL", Label: "Illinois"},
	{ID: "IN", Label: "Indiana"},
	{ID: "IA", Label: "Iowa"},
	{ID: "KS", Label: "Kansas"},
	{ID: "KY", Label: "Kentucky"},
	{ID: "LA", Label: "Louisiana"},
	{ID: "ME", Label: "Maine"},
	{ID: "MD", Label: "Maryland"},
	{ID: "MA", Label: "Massachusetts"},
	{ID: "MI", Label: "Michigan"},
	{ID: "MN", Label: "Minnesota"},
	{ID: "MS", Label: "Mississippi"},
	{ID: "MO", Label: "Missouri"},
	{ID: "MT", Label: "Montana"},
	{ID: "NE", Label: "Nebraska"},
	{ID: "NV", Label: "Nevada"},
	{ID: "NH", Label: "New Hampshire"},
	{ID: "NJ", Label: "New Jersey"},
	{ID: "NM", Label: "New Mexico"},
	{ID: "NY", Label: "New York"},
	{ID: "NC", Label: "North Carolina"},
	{ID: "ND", Label: "North Dakota"},
	{ID: "OH", Label: "Ohio"},
	{ID: "OK", Label: "Oklahoma"},
	{ID: "OR", Label: "Oregon"},
	{ID: "PA", Label: "Pennsylvania"},
	{ID: "RI", Label: "Rhode Island"},
	{ID: "SC", Label: "South Carolina"},
	{ID: "SD", Label: "South Dakota"},
	{ID: "TN", Label: "Tennessee"},
	{ID: "TX", Label: "Texas"},
	{ID: "UT", Label: "Utah"},
	{ID: "VT", Label: "Vermont"},
	{ID: "VA", Label: "Virginia"},
	{ID: "WA", Label: "Washington"},
	{ID: "WV", Label: "West Virginia"},
	{ID: "WI", Label: "Wisconsin"},
	{ID: "WY", Label: "Wyoming"},
}

// BusinessTypeOptions lists the accepted legal entity types for EIN-holding
// businesses.
var BusinessTypeOptions = []Option{
	{ID: "LLC", Label: "LLC"},
	{ID: "Corporation", Label: "Corporation"},
	{ID: "Partnership", Label: "Partnership"},
	{ID: "Non-profit", Label: "Non-profit"},
}

// IsState reports whether code is a recognised state or DC code.
func IsState(code string) bool {
	for _, opt := range StateOptions {
		if opt.ID == code {
			return true
		}
	}
	return false
}

// IsBusinessType reports whether value is a recognised legal entity type.
func IsBusinessType(value string) bool {
	for _, opt := range BusinessTypeOptions {
		if opt.ID == value {
			return true
		}
	}
	return false
}
