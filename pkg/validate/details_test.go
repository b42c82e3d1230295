package validate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relaykit/intake/pkg/catalog"
)

func validRecord() Record {
	return Record{
		"business_name":        "Bright Smile Dental",
		"business_description": "A family dental practice offering cleanings, whitening, and orthodontics.",
		"has_ein":              "yes",
		"ein":                  "12-3456789",
		"business_type":        "LLC",
		"contact_name":         "Jordan Alvarez",
		"email":                "jordan@brightsmile.com",
		"phone":                "(555) 123-4567",
		"address_line1":        "100 Main St",
		"address_city":         "Austin",
		"address_state":        "TX",
		"address_zip":          "78701",
		"website_url":          "brightsmile.com",
		"service_type":         "dental",
	}
}

func TestValidate_ValidRecordNormalizes(t *testing.T) {
	data, errs := Validate(catalog.UseCaseAppointments, validRecord())
	if !errs.Valid() {
		t.Fatalf("expected valid record, got %v", errs)
	}

	if data.Phone != "5551234567" {
		t.Errorf("phone not normalized to digits: %q", data.Phone)
	}
	if data.EIN != "123456789" {
		t.Errorf("ein not normalized to digits: %q", data.EIN)
	}
	if data.WebsiteURL != "https://brightsmile.com" {
		t.Errorf("website not normalized: %q", data.WebsiteURL)
	}
}

func TestValidate_MissingEmail(t *testing.T) {
	record := validRecord()
	delete(record, "email")

	_, errs := Validate(catalog.UseCaseAppointments, record)
	if errs.Valid() {
		t.Fatalf("record without email must be invalid")
	}
	if got := errs.ByField("email"); got != "Required field" {
		t.Fatalf("email error = %q", got)
	}
}

func TestValidate_EINConditional(t *testing.T) {
	t.Run("no ein needed without one", func(t *testing.T) {
		record := validRecord()
		record["has_ein"] = "no"
		record["ein"] = ""
		record["business_type"] = ""

		data, errs := Validate(catalog.UseCaseAppointments, record)
		if !errs.Valid() {
			t.Fatalf("has_ein=no must not require ein/business_type, got %v", errs)
		}
		if data.EIN != "" || data.BusinessType != "" {
			t.Fatalf("ein/business_type should stay empty, got %q/%q", data.EIN, data.BusinessType)
		}
	})

	t.Run("stale values dropped when answer flips to no", func(t *testing.T) {
		record := validRecord()
		record["has_ein"] = "no"

		data, errs := Validate(catalog.UseCaseAppointments, record)
		if !errs.Valid() {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if data.EIN != "" || data.BusinessType != "" {
			t.Fatalf("stale ein/business_type must be dropped, got %q/%q", data.EIN, data.BusinessType)
		}
	})

	t.Run("short ein rejected", func(t *testing.T) {
		record := validRecord()
		record["ein"] = "1234567"

		_, errs := Validate(catalog.UseCaseAppointments, record)
		if got := errs.ByField("ein"); got != "EIN must be 9 digits" {
			t.Fatalf("ein error = %q", got)
		}
	})

	t.Run("missing business type rejected", func(t *testing.T) {
		record := validRecord()
		record["business_type"] = ""

		_, errs := Validate(catalog.UseCaseAppointments, record)
		if got := errs.ByField("business_type"); got != "Required field" {
			t.Fatalf("business_type error = %q", got)
		}
	})
}

func TestValidate_FieldRules(t *testing.T) {
	cases := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"business name too short", "business_name", "B", "Required field"},
		{"business name too long", "business_name", strings.Repeat("a", 101), "100 character maximum"},
		{"business name bad punctuation", "business_name", "Joe's Pizza", "Business name can only contain letters, numbers, spaces, and basic punctuation (. , - !)"},
		{"description too short", "business_description", "Too short.", "Please describe your business in at least a sentence or two"},
		{"description too long", "business_description", strings.Repeat("a", 4097), "4096 character maximum"},
		{"email shape", "email", "not-an-email", "Enter a valid email address"},
		{"phone too short", "phone", "555123", "Enter a 10-digit US phone number"},
		{"phone area code zero", "phone", "0551234567", "US area codes don't start with 0 or 1"},
		{"phone area code one", "phone", "1551234567", "US area codes don't start with 0 or 1"},
		{"state unknown", "address_state", "ZZ", "Required field"},
		{"zip short", "address_zip", "787", "ZIP code must be 5 digits"},
		{"website missing tld", "website_url", "localhost", "Enter a valid URL like yourapp.com"},
		{"contact name short", "contact_name", "J", "Required field"},
		{"city short", "address_city", "A", "Required field"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := validRecord()
			record[tc.field] = tc.value

			_, errs := Validate(catalog.UseCaseAppointments, record)
			if got := errs.ByField(tc.field); got != tc.message {
				t.Fatalf("field %s error = %q, want %q", tc.field, got, tc.message)
			}
		})
	}
}

func TestValidate_UseCaseFields(t *testing.T) {
	t.Run("appointments requires service type", func(t *testing.T) {
		record := validRecord()
		delete(record, "service_type")

		_, errs := Validate(catalog.UseCaseAppointments, record)
		if got := errs.ByField("service_type"); got != "Required field" {
			t.Fatalf("service_type error = %q", got)
		}
	})

	t.Run("verification app name optional", func(t *testing.T) {
		record := validRecord()
		delete(record, "service_type")

		_, errs := Validate(catalog.UseCaseVerification, record)
		if !errs.Valid() {
			t.Fatalf("app_name is always optional, got %v", errs)
		}
	})

	t.Run("community requires community name", func(t *testing.T) {
		record := validRecord()
		delete(record, "service_type")

		_, errs := Validate(catalog.UseCaseCommunity, record)
		if got := errs.ByField("community_name"); got != "Required field" {
			t.Fatalf("community_name error = %q", got)
		}
	})

	t.Run("support has no extra field", func(t *testing.T) {
		record := validRecord()
		delete(record, "service_type")

		_, errs := Validate(catalog.UseCaseSupport, record)
		if !errs.Valid() {
			t.Fatalf("support needs no extra field, got %v", errs)
		}
	})
}

func TestValidate_ErrorsInFormOrder(t *testing.T) {
	record := validRecord()
	record["business_name"] = ""
	record["email"] = "bad"
	record["address_zip"] = "1"
	delete(record, "service_type")

	_, errs := Validate(catalog.UseCaseAppointments, record)
	want := []string{"business_name", "email", "address_zip", "service_type"}
	if diff := cmp.Diff(want, errs.Fields()); diff != "" {
		t.Fatalf("error order mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	data, errs := Validate(catalog.UseCaseAppointments, validRecord())
	if !errs.Valid() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	again, errs := Validate(catalog.UseCaseAppointments, data.Record())
	if !errs.Valid() {
		t.Fatalf("re-validating serialized record failed: %v", errs)
	}
	if diff := cmp.Diff(data, again); diff != "" {
		t.Fatalf("record round-trip mismatch (-want +got):\n%s", diff)
	}
}
