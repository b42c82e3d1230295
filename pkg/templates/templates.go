// Package templates derives the carrier-facing registration artifacts from
// structured intake facts: a campaign description, three labeled sample
// messages, and the compliance-page slug. Everything here is a pure function
// of its input.
package templates

import (
	"fmt"

	"github.com/relaykit/intake/pkg/catalog"
)

// Input carries the business facts interpolated into the generated copy.
// The use-case noun fields are optional; each has a generic fallback.
type Input struct {
	UseCase             catalog.UseCaseID
	BusinessName        string
	BusinessDescription string
	ServiceType         string
	ProductType         string
	AppName             string
	CommunityName       string
	VenueType           string
}

// Output is the generated registration preview. Sample messages keep their
// {{placeholder}} tokens verbatim; carriers want representative shapes, not
// live data.
type Output struct {
	CampaignDescription string
	SampleMessages      [3]string
	MessageLabels       [3]string
}

func (in Input) serviceType() string {
	if in.ServiceType != "" {
		return in.ServiceType
	}
	return "services"
}

func (in Input) productType() string {
	if in.ProductType != "" {
		return in.ProductType
	}
	return "products"
}

func (in Input) appName() string {
	if in.AppName != "" {
		return in.AppName
	}
	return in.BusinessName
}

func (in Input) communityName() string {
	if in.CommunityName != "" {
		return in.CommunityName
	}
	return in.BusinessName
}

func (in Input) venueType() string {
	if in.VenueType != "" {
		return in.VenueType
	}
	return "venue"
}

// Generate produces the campaign description and sample messages for the
// input's use case. An unrecognised use case is the only failure mode.
func Generate(in Input) (Output, error) {
	gen, ok := generators[in.UseCase]
	if !ok {
		return Output{}, fmt.Errorf("templates: unknown use case %q", in.UseCase)
	}
	return gen(in), nil
}

var generators = map[catalog.UseCaseID]func(Input) Output{
	catalog.UseCaseAppointments: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends appointment confirmations, reminders, and rescheduling notices to customers who have booked %s through our platform. Customers can reply to confirm, reschedule, or cancel their appointments.",
				in.BusinessName, in.serviceType()),
			SampleMessages: [3]string{
				fmt.Sprintf("Hi {{name}}, your appointment with %s is confirmed for {{date}} at {{time}}. Reply YES to confirm or RESCHEDULE to change. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Reminder: You have an appointment tomorrow at {{time}} with %s. Reply CANCEL if you need to cancel. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Thanks for visiting %s! We hope everything went well. Reply STOP to opt out.", in.BusinessName),
			},
			MessageLabels: [3]string{"Confirmation", "Reminder", "Follow-up"},
		}
	},
	catalog.UseCaseOrders: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends order confirmations, shipping updates, and delivery notifications to customers who have purchased %s through our platform. Customers can reply with questions about their orders.",
				in.BusinessName, in.productType()),
			SampleMessages: [3]string{
				fmt.Sprintf("Your order #{{order_id}} from %s has been confirmed! We'll notify you when it ships. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Great news! Your order from %s has shipped. Track it here: {{tracking_url}}. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Your %s order has been delivered. Reply STOP to opt out.", in.BusinessName),
			},
			MessageLabels: [3]string{"Order confirmation", "Shipping update", "Delivery confirmation"},
		}
	},
	// Verification traffic is transactional OTP delivery; carriers do not
	// expect opt-out language on it, so these samples carry none.
	catalog.UseCaseVerification: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends one-time passwords, two-factor authentication codes, and phone verification messages to users who are logging in or verifying their identity on our platform.",
				in.appName()),
			SampleMessages: [3]string{
				fmt.Sprintf("Your %s verification code is {{code}}. It expires in 10 minutes. Do not share this code.", in.appName()),
				fmt.Sprintf("{{code}} is your %s login code. If you didn't request this, ignore this message.", in.appName()),
				fmt.Sprintf("Your phone number has been verified for %s. You can now log in.", in.appName()),
			},
			MessageLabels: [3]string{"Verification code", "Login code", "Confirmation"},
		}
	},
	catalog.UseCaseSupport: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends support ticket acknowledgments, status updates, and resolution notifications to customers who have contacted our support team. Customers can reply to continue support conversations.",
				in.BusinessName),
			SampleMessages: [3]string{
				fmt.Sprintf("%s Support: We've received your request (#{{ticket_id}}). A team member will respond shortly. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("%s Support: Update on ticket #{{ticket_id}}: {{status_update}}. Reply to this message for more help. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Your support ticket #{{ticket_id}} has been resolved. Thanks for contacting %s! Reply STOP to opt out.", in.BusinessName),
			},
			MessageLabels: [3]string{"Acknowledgment", "Status update", "Resolution"},
		}
	},
	catalog.UseCaseMarketing: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends promotional offers, product announcements, sale notifications, and loyalty updates to customers who have explicitly opted in to receive marketing messages.",
				in.BusinessName),
			SampleMessages: [3]string{
				fmt.Sprintf("%s: {{promo_message}}! Use code {{code}} for {{discount}}%% off. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("New from %s: {{product_name}} is now available! Check it out: {{link}}. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("%s Sale Alert: {{sale_details}}. Shop now: {{link}}. Reply STOP to opt out.", in.BusinessName),
			},
			MessageLabels: [3]string{"Promotional offer", "Product announcement", "Sale alert"},
		}
	},
	catalog.UseCaseInternal: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends shift notifications, schedule updates, meeting reminders, and operational alerts to team members and staff who have opted in to receive internal communications.",
				in.BusinessName),
			SampleMessages: [3]string{
				fmt.Sprintf("%s Team: Your shift on {{date}} has been updated. New time: {{time}}. Reply OK to confirm. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Reminder: Team meeting today at {{time}}. Agenda: {{topic}}. - %s. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("%s Alert: {{alert_message}}. Contact your manager if you have questions. Reply STOP to opt out.", in.BusinessName),
			},
			MessageLabels: [3]string{"Shift update", "Meeting reminder", "Operational alert"},
		}
	},
	catalog.UseCaseCommunity: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends event announcements, community updates, membership notifications, and group activity alerts to members who have opted in to receive messages.",
				in.communityName()),
			SampleMessages: [3]string{
				fmt.Sprintf("%s: {{event_name}} is happening on {{date}}! Reply YES to RSVP. Reply STOP to opt out.", in.communityName()),
				fmt.Sprintf("Update from %s: {{update_message}}. Reply STOP to opt out.", in.communityName()),
				fmt.Sprintf("%s: Welcome, {{name}}! You're now a member. Reply STOP to opt out.", in.communityName()),
			},
			MessageLabels: [3]string{"Event announcement", "Community update", "Welcome"},
		}
	},
	catalog.UseCaseWaitlist: func(in Input) Output {
		return Output{
			CampaignDescription: fmt.Sprintf(
				"%s sends waitlist position updates, availability alerts, and reservation confirmations to customers who have joined our waitlist at our %s. Customers can reply to accept or decline.",
				in.BusinessName, in.venueType()),
			SampleMessages: [3]string{
				fmt.Sprintf("%s: Great news! Your spot is ready. Please arrive within {{minutes}} minutes. Reply YES to confirm. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("You're #{{position}} on the waitlist at %s. Estimated wait: {{time}}. Reply STOP to opt out.", in.BusinessName),
				fmt.Sprintf("Your reservation at %s for {{date}} at {{time}} is confirmed. Reply CHANGE to modify. Reply STOP to opt out.", in.BusinessName),
			},
			MessageLabels: [3]string{"Ready alert", "Position update", "Reservation confirmation"},
		}
	},
}
