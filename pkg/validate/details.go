package validate

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/relaykit/intake/pkg/catalog"
)

// Record is the raw string-keyed form input handed to Validate.
type Record map[string]string

// BusinessDetailsData is a validated, normalized business-details record.
// Phone and EIN hold digits only; the website URL carries an https:// scheme.
type BusinessDetailsData struct {
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	HasEIN              string `json:"has_ein"`
	EIN                 string `json:"ein,omitempty"`
	BusinessType        string `json:"business_type,omitempty"`
	ContactName         string `json:"contact_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	AddressLine1        string `json:"address_line1"`
	AddressCity         string `json:"address_city"`
	AddressState        string `json:"address_state"`
	AddressZip          string `json:"address_zip"`
	WebsiteURL          string `json:"website_url,omitempty"`
	ServiceType         string `json:"service_type,omitempty"`
	ProductType         string `json:"product_type,omitempty"`
	AppName             string `json:"app_name,omitempty"`
	CommunityName       string `json:"community_name,omitempty"`
	VenueType           string `json:"venue_type,omitempty"`
}

var (
	// Characters beyond this set break downstream carrier integrations.
	businessNameRE = regexp.MustCompile(`^[a-zA-Z0-9\s.,\-!]+$`)
	emailRE        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRE          = regexp.MustCompile(`^\d{5}$`)
	// Naive TLD presence check for optional website URLs.
	tldRE = regexp.MustCompile(`\.[a-zA-Z]{2,}`)
)

const (
	msgRequired        = "Required field"
	msgBusinessNameMax = "100 character maximum"
	msgBusinessNameSet = "Business name can only contain letters, numbers, spaces, and basic punctuation (. , - !)"
	msgDescriptionMin  = "Please describe your business in at least a sentence or two"
	msgDescriptionMax  = "4096 character maximum"
	msgEmail           = "Enter a valid email address"
	msgPhoneLength     = "Enter a 10-digit US phone number"
	msgPhoneAreaCode   = "US area codes don't start with 0 or 1"
	msgZip             = "ZIP code must be 5 digits"
	msgWebsite         = "Enter a valid URL like yourapp.com"
	msgEIN             = "EIN must be 9 digits"
)

// Validate checks a candidate record against the generic schema and the
// use-case-specific required-field rules, returning either a normalized
// BusinessDetailsData or the full list of field errors. It is pure: callers
// re-run it on every change and decide themselves which errors to surface.
func Validate(useCase catalog.UseCaseID, record Record) (BusinessDetailsData, FieldErrors) {
	data := fromRecord(record)

	err := validation.ValidateStruct(&data,
		validation.Field(&data.BusinessName,
			validation.By(requiredMin(2)),
			validation.RuneLength(0, 100).Error(msgBusinessNameMax),
			validation.Match(businessNameRE).Error(msgBusinessNameSet),
		),
		validation.Field(&data.BusinessDescription,
			validation.Required.Error(msgRequired),
			validation.RuneLength(20, 0).Error(msgDescriptionMin),
			validation.RuneLength(0, 4096).Error(msgDescriptionMax),
		),
		validation.Field(&data.HasEIN,
			validation.Required.Error(msgRequired),
			validation.In("yes", "no").Error(msgRequired),
		),
		validation.Field(&data.EIN,
			validation.When(data.HasEIN == "yes",
				validation.Required.Error(msgRequired),
				validation.By(einRule),
			),
		),
		validation.Field(&data.BusinessType,
			validation.When(data.HasEIN == "yes",
				validation.Required.Error(msgRequired),
				validation.By(businessTypeRule),
			),
		),
		validation.Field(&data.ContactName,
			validation.By(requiredMin(2)),
		),
		validation.Field(&data.Email,
			validation.Required.Error(msgRequired),
			validation.Match(emailRE).Error(msgEmail),
		),
		validation.Field(&data.Phone,
			validation.Required.Error(msgRequired),
			validation.By(phoneRule),
		),
		validation.Field(&data.AddressLine1,
			validation.Required.Error(msgRequired),
		),
		validation.Field(&data.AddressCity,
			validation.By(requiredMin(2)),
		),
		validation.Field(&data.AddressState,
			validation.By(stateRule),
		),
		validation.Field(&data.AddressZip,
			validation.Required.Error(msgRequired),
			validation.Match(zipRE).Error(msgZip),
		),
		validation.Field(&data.WebsiteURL,
			validation.By(websiteRule),
		),
	)

	fieldErrs := collectErrors(err)
	if spec, ok := UseCaseField(useCase); ok && spec.Required {
		if len(strings.TrimSpace(data.Field(spec.Name))) < 2 {
			fieldErrs = append(fieldErrs, FieldError{Field: spec.Name, Message: msgRequired})
		}
	}
	if len(fieldErrs) > 0 {
		return BusinessDetailsData{}, orderErrors(fieldErrs)
	}

	data.Phone = Digits(data.Phone)
	if data.HasEIN == "yes" {
		data.EIN = Digits(data.EIN)
	} else {
		// Stray values from an earlier "yes" answer are dropped so they never
		// reach the serialized record.
		data.EIN = ""
		data.BusinessType = ""
	}
	data.WebsiteURL = NormalizeWebsiteURL(data.WebsiteURL)
	return data, nil
}

// Field returns the value of the named business-detail field.
func (d BusinessDetailsData) Field(name string) string {
	switch name {
	case "business_name":
		return d.BusinessName
	case "business_description":
		return d.BusinessDescription
	case "has_ein":
		return d.HasEIN
	case "ein":
		return d.EIN
	case "business_type":
		return d.BusinessType
	case "contact_name":
		return d.ContactName
	case "email":
		return d.Email
	case "phone":
		return d.Phone
	case "address_line1":
		return d.AddressLine1
	case "address_city":
		return d.AddressCity
	case "address_state":
		return d.AddressState
	case "address_zip":
		return d.AddressZip
	case "website_url":
		return d.WebsiteURL
	case "service_type":
		return d.ServiceType
	case "product_type":
		return d.ProductType
	case "app_name":
		return d.AppName
	case "community_name":
		return d.CommunityName
	case "venue_type":
		return d.VenueType
	default:
		return ""
	}
}

// Record flattens the data back into the string-keyed form shape, omitting
// empty fields.
func (d BusinessDetailsData) Record() Record {
	out := make(Record, len(DetailFieldNames))
	for _, name := range DetailFieldNames {
		if value := d.Field(name); value != "" {
			out[name] = value
		}
	}
	return out
}

func fromRecord(record Record) BusinessDetailsData {
	get := func(name string) string {
		return strings.TrimSpace(record[name])
	}
	return BusinessDetailsData{
		BusinessName:        get("business_name"),
		BusinessDescription: get("business_description"),
		HasEIN:              get("has_ein"),
		EIN:                 get("ein"),
		BusinessType:        get("business_type"),
		ContactName:         get("contact_name"),
		Email:               get("email"),
		Phone:               get("phone"),
		AddressLine1:        get("address_line1"),
		AddressCity:         get("address_city"),
		AddressState:        get("address_state"),
		AddressZip:          get("address_zip"),
		WebsiteURL:          get("website_url"),
		ServiceType:         get("service_type"),
		ProductType:         get("product_type"),
		AppName:             get("app_name"),
		CommunityName:       get("community_name"),
		VenueType:           get("venue_type"),
	}
}

func requiredMin(min int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(strings.TrimSpace(s)) < min {
			return errors.New(msgRequired)
		}
		return nil
	}
}

func einRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if len(Digits(s)) != 9 {
		return errors.New(msgEIN)
	}
	return nil
}

func businessTypeRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !IsBusinessType(s) {
		return errors.New(msgRequired)
	}
	return nil
}

func phoneRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	digits := Digits(s)
	if len(digits) != 10 {
		return errors.New(msgPhoneLength)
	}
	if digits[0] == '0' || digits[0] == '1' {
		return errors.New(msgPhoneAreaCode)
	}
	return nil
}

func stateRule(value interface{}) error {
	s, _ := value.(string)
	if !IsState(s) {
		return errors.New(msgRequired)
	}
	return nil
}

func websiteRule(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !tldRE.MatchString(s) {
		return errors.New(msgWebsite)
	}
	return nil
}

func collectErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		// Not field-shaped; attribute it to the form as a whole.
		return FieldErrors{{Field: "form", Message: err.Error()}}
	}
	out := make(FieldErrors, 0, len(verrs))
	for field, ferr := range verrs {
		if ferr == nil {
			continue
		}
		out = append(out, FieldError{Field: field, Message: ferr.Error()})
	}
	return out
}

func orderErrors(errs FieldErrors) FieldErrors {
	if len(errs) == 0 {
		return nil
	}
	rank := make(map[string]int, len(DetailFieldNames))
	for i, name := range DetailFieldNames {
		rank[name] = i
	}
	ordered := make(FieldErrors, 0, len(errs))
	for _, name := range DetailFieldNames {
		for _, fe := range errs {
			if fe.Field == name {
				ordered = append(ordered, fe)
				break
			}
		}
	}
	// Anything not in the canonical list (e.g. form-level) goes last.
	for _, fe := range errs {
		if _, known := rank[fe.Field]; !known {
			ordered = append(ordered, fe)
		}
	}
	return ordered
}
