package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/relaykit/intake/pkg/campaign"
	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/templates"
	"github.com/relaykit/intake/pkg/validate"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Println("\nCancelled.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "intake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store := catalog.Default()

	def, err := pickUseCase(store)
	if err != nil {
		return err
	}

	expansions, err := pickExpansions(def)
	if err != nil {
		return err
	}
	campaignType := campaign.Determine(def.ID, expansions)
	fmt.Printf("\nRegisters as: %s\n", campaignType)
	if campaign.HasMarketingExpansion(expansions) {
		fmt.Println("Note: your app's opt-in form will include a checkbox for marketing messages.")
	}

	details, err := askDetails(def.ID)
	if err != nil {
		return err
	}

	return printPreview(def, expansions, details)
}

func pickUseCase(store *catalog.Store) (catalog.UseCaseDefinition, error) {
	defs := store.List()
	options := make([]string, 0, len(defs))
	for _, def := range defs {
		options = append(options, fmt.Sprintf("%s (%s)", def.Label, def.Description))
	}

	var index int
	prompt := &survey.Select{
		Message:  "What does your app do?",
		Help:     "Pick the closest match. This helps us write your registration for maximum approval odds.",
		Options:  options,
		PageSize: len(options),
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return catalog.UseCaseDefinition{}, err
	}
	return defs[index], nil
}

func pickExpansions(def catalog.UseCaseDefinition) ([]string, error) {
	if len(def.Expansions) == 0 {
		return nil, nil
	}

	options := make([]string, 0, len(def.Expansions))
	defaults := []string{}
	for _, exp := range def.Expansions {
		options = append(options, exp.Label)
		if !campaign.IsPromotionalExpansion(exp.ID) {
			defaults = append(defaults, exp.Label)
		}
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message: "Will you also need any of these in the future?",
		Options: options,
		Default: defaults,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(picked))
	for _, label := range picked {
		for _, exp := range def.Expansions {
			if exp.Label == label {
				selected = append(selected, exp.ID)
			}
		}
	}
	return selected, nil
}

// askDetails collects the business record and re-prompts until it validates.
func askDetails(useCase catalog.UseCaseID) (validate.BusinessDetailsData, error) {
	record := validate.Record{}

	for {
		if err := promptDetails(useCase, record); err != nil {
			return validate.BusinessDetailsData{}, err
		}

		data, errs := validate.Validate(useCase, record)
		if errs.Valid() {
			return data, nil
		}

		fmt.Println("\nSome answers need another look:")
		for _, fe := range errs {
			fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
		}
		fmt.Println()
	}
}

func promptDetails(useCase catalog.UseCaseID, record validate.Record) error {
	if err := askInput(record, "business_name", "Business or app name:",
		"The name your customers will see on texts"); err != nil {
		return err
	}
	if err := askMultiline(record, "business_description", "What does your business/app do?"); err != nil {
		return err
	}
	if spec, ok := validate.UseCaseField(useCase); ok {
		if err := askInput(record, spec.Name, spec.Label, spec.Placeholder); err != nil {
			return err
		}
	}
	if err := askInput(record, "website_url", "Website (optional):", "yourapp.com"); err != nil {
		return err
	}

	if err := askSelect(record, "has_ein", "Do you have a US business tax ID (EIN)?",
		[]validate.Option{{ID: "yes", Label: "Yes"}, {ID: "no", Label: "No"}},
		"If you're a sole proprietor or hobbyist without an EIN, select No."); err != nil {
		return err
	}
	if record["has_ein"] == "yes" {
		if err := askInput(record, "ein", "EIN:", "XX-XXXXXXX"); err != nil {
			return err
		}
		if err := askSelect(record, "business_type", "Business type:",
			validate.BusinessTypeOptions, ""); err != nil {
			return err
		}
	} else {
		delete(record, "ein")
		delete(record, "business_type")
	}

	if err := askInput(record, "contact_name", "Your full name:", ""); err != nil {
		return err
	}
	if err := askInput(record, "email", "Email address:", "you@example.com"); err != nil {
		return err
	}
	if err := askInput(record, "phone", "Mobile phone number:", "(555) 555-1234"); err != nil {
		return err
	}
	if err := askInput(record, "address_line1", "Street address:", "123 Main St"); err != nil {
		return err
	}
	if err := askInput(record, "address_city", "City:", ""); err != nil {
		return err
	}
	if err := askSelect(record, "address_state", "State:", validate.StateOptions, ""); err != nil {
		return err
	}
	return askInput(record, "address_zip", "ZIP code:", "XXXXX")
}

func askInput(record validate.Record, field, message, help string) error {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: record[field],
		Help:    help,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return err
	}
	record[field] = strings.TrimSpace(out)
	return nil
}

func askMultiline(record validate.Record, field, message string) error {
	var out string
	prompt := &survey.Multiline{
		Message: message,
		Default: record[field],
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return err
	}
	record[field] = strings.TrimSpace(out)
	return nil
}

func askSelect(record validate.Record, field, message string, options []validate.Option, help string) error {
	labels := make([]string, 0, len(options))
	defaultLabel := ""
	for _, opt := range options {
		labels = append(labels, opt.Label)
		if opt.ID == record[field] {
			defaultLabel = opt.Label
		}
	}

	var picked string
	prompt := &survey.Select{
		Message:  message,
		Options:  labels,
		Help:     help,
		PageSize: 10,
	}
	if defaultLabel != "" {
		prompt.Default = defaultLabel
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return err
	}
	for _, opt := range options {
		if opt.Label == picked {
			record[field] = opt.ID
			return nil
		}
	}
	return nil
}

func printPreview(def catalog.UseCaseDefinition, expansions []string, details validate.BusinessDetailsData) error {
	generated, err := templates.Generate(templates.Input{
		UseCase:             def.ID,
		BusinessName:        details.BusinessName,
		BusinessDescription: details.BusinessDescription,
		ServiceType:         details.ServiceType,
		ProductType:         details.ProductType,
		AppName:             details.AppName,
		CommunityName:       details.CommunityName,
		VenueType:           details.VenueType,
	})
	if err != nil {
		return err
	}

	businessType := "Sole Proprietor"
	if details.HasEIN == "yes" && details.BusinessType != "" {
		businessType = details.BusinessType
	}

	fmt.Println("\nHere's what we'll register for you")
	fmt.Println("==================================")
	fmt.Printf("Business:      %s (%s)\n", details.BusinessName, businessType)
	fmt.Printf("Contact:       %s <%s>, %s\n", details.ContactName, details.Email, validate.FormatPhone(details.Phone))
	fmt.Printf("Use case:      %s\n", def.Label)
	fmt.Printf("Campaign type: %s\n", campaign.Determine(def.ID, expansions))

	fmt.Println("\nCampaign description:")
	fmt.Printf("  %s\n", generated.CampaignDescription)

	fmt.Println("\nSample messages:")
	for i, msg := range generated.SampleMessages {
		fmt.Printf("  %s: %s\n", generated.MessageLabels[i], msg)
	}

	scope := catalog.ResolveScope(def, expansions)
	fmt.Println("\nWhat this registration covers:")
	for _, item := range scope.Included {
		fmt.Printf("  + %s\n", item)
	}
	for _, item := range scope.NotIncluded {
		fmt.Printf("  - %s\n", item)
	}

	fmt.Printf("\nCompliance website: %s.relaykit.co\n", templates.ComplianceSlug(details.BusinessName))
	return nil
}
