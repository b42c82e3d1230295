package templates

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relaykit/intake/pkg/catalog"
)

func TestGenerate_Deterministic(t *testing.T) {
	in := Input{
		UseCase:      catalog.UseCaseAppointments,
		BusinessName: "Bright Smile Dental",
		ServiceType:  "dental",
	}

	first, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("identical inputs produced different output (-first +second):\n%s", diff)
	}
}

func TestGenerate_BusinessNameAppearsEverywhere(t *testing.T) {
	for _, id := range catalog.KnownUseCaseIDs {
		out, err := Generate(Input{UseCase: id, BusinessName: "Acme Robotics"})
		if err != nil {
			t.Fatalf("Generate(%s): %v", id, err)
		}
		if !strings.Contains(out.CampaignDescription, "Acme Robotics") {
			t.Errorf("%s: description does not mention the business name", id)
		}
		for i, msg := range out.SampleMessages {
			if !strings.Contains(msg, "Acme Robotics") {
				t.Errorf("%s: sample message %d does not mention the business name", id, i+1)
			}
			if msg == "" {
				t.Errorf("%s: sample message %d is empty", id, i+1)
			}
		}
		for i, label := range out.MessageLabels {
			if label == "" {
				t.Errorf("%s: message label %d is empty", id, i+1)
			}
		}
	}
}

// Every use case except OTP verification carries opt-out language on all
// three samples.
func TestGenerate_StopDisclosure(t *testing.T) {
	for _, id := range catalog.KnownUseCaseIDs {
		out, err := Generate(Input{UseCase: id, BusinessName: "Acme"})
		if err != nil {
			t.Fatalf("Generate(%s): %v", id, err)
		}
		for i, msg := range out.SampleMessages {
			hasStop := strings.Contains(msg, "Reply STOP to opt out.")
			if id == catalog.UseCaseVerification && hasStop {
				t.Errorf("verification message %d must not carry opt-out language: %q", i+1, msg)
			}
			if id != catalog.UseCaseVerification && !hasStop {
				t.Errorf("%s message %d missing opt-out language: %q", id, i+1, msg)
			}
		}
	}
}

func TestGenerate_NounFallbacks(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want string
	}{
		{
			name: "service type fallback",
			in:   Input{UseCase: catalog.UseCaseAppointments, BusinessName: "Acme"},
			want: "booked services through",
		},
		{
			name: "service type supplied",
			in:   Input{UseCase: catalog.UseCaseAppointments, BusinessName: "Acme", ServiceType: "haircuts"},
			want: "booked haircuts through",
		},
		{
			name: "product type fallback",
			in:   Input{UseCase: catalog.UseCaseOrders, BusinessName: "Acme"},
			want: "purchased products through",
		},
		{
			name: "app name fallback uses business name",
			in:   Input{UseCase: catalog.UseCaseVerification, BusinessName: "Acme"},
			want: "Acme sends one-time passwords",
		},
		{
			name: "app name supplied",
			in:   Input{UseCase: catalog.UseCaseVerification, BusinessName: "Acme", AppName: "AcmeAuth"},
			want: "AcmeAuth sends one-time passwords",
		},
		{
			name: "venue fallback",
			in:   Input{UseCase: catalog.UseCaseWaitlist, BusinessName: "Acme"},
			want: "waitlist at our venue",
		},
		{
			name: "community name supplied",
			in:   Input{UseCase: catalog.UseCaseCommunity, BusinessName: "Acme", CommunityName: "Runners Club"},
			want: "Runners Club sends event announcements",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Generate(tc.in)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if !strings.Contains(out.CampaignDescription, tc.want) {
				t.Fatalf("description %q does not contain %q", out.CampaignDescription, tc.want)
			}
		})
	}
}

func TestGenerate_PlaceholdersSurvive(t *testing.T) {
	out, err := Generate(Input{UseCase: catalog.UseCaseMarketing, BusinessName: "Acme"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.SampleMessages[0], "{{code}}") {
		t.Fatalf("placeholder token lost: %q", out.SampleMessages[0])
	}
	if !strings.Contains(out.SampleMessages[0], "{{discount}}% off") {
		t.Fatalf("literal percent mangled: %q", out.SampleMessages[0])
	}
}

func TestGenerate_UnknownUseCase(t *testing.T) {
	if _, err := Generate(Input{UseCase: "carrier_pigeon", BusinessName: "Acme"}); err == nil {
		t.Fatalf("expected error for unknown use case")
	}
}

func TestComplianceSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Joe's Pizza & Subs!!", "joe-s-pizza-subs"},
		{"Bright Smile Dental", "bright-smile-dental"},
		{"  Acme  ", "acme"},
		{"---", ""},
		{"Café München", "caf-m-nchen"},
		{"a1 b2", "a1-b2"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ComplianceSlug(tc.in); got != tc.want {
			t.Errorf("ComplianceSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestComplianceSlug_Idempotent(t *testing.T) {
	for _, name := range []string{"Joe's Pizza & Subs!!", "Bright Smile Dental", "x--y"} {
		once := ComplianceSlug(name)
		if twice := ComplianceSlug(once); twice != once {
			t.Errorf("slug not idempotent for %q: %q -> %q", name, once, twice)
		}
	}
}
