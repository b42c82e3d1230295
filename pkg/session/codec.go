package session

import (
	"net/url"
	"strings"

	"github.com/relaykit/intake/pkg/catalog"
	"github.com/relaykit/intake/pkg/validate"
)

// Query parameter names shared by every wizard step. Business-detail fields
// are serialized verbatim under their form names.
const (
	ParamUseCase      = "use_case"
	ParamExpansions   = "expansions"
	ParamCampaignType = "campaign_type"
)

// EncodeQuery serializes a session into query parameters. Empty values are
// omitted entirely, expansions are comma-joined, and the phone number is
// always digits-only on the wire.
func EncodeQuery(s IntakeSession) url.Values {
	values := url.Values{}
	if s.UseCase != "" {
		values.Set(ParamUseCase, string(s.UseCase))
	}
	if len(s.Expansions) > 0 {
		values.Set(ParamExpansions, strings.Join(s.Expansions, ","))
	}
	if s.CampaignType != "" {
		values.Set(ParamCampaignType, s.CampaignType)
	}
	for _, name := range validate.DetailFieldNames {
		value := s.BusinessDetails[name]
		if name == "phone" {
			value = validate.Digits(value)
		}
		if value != "" {
			values.Set(name, value)
		}
	}
	return values
}

// DecodeQuery reconstructs a session from query parameters. Unknown
// parameters are ignored; an absent parameter leaves its field unset.
func DecodeQuery(values url.Values) IntakeSession {
	var s IntakeSession
	s.UseCase = catalog.UseCaseID(values.Get(ParamUseCase))
	s.CampaignType = values.Get(ParamCampaignType)

	if raw := values.Get(ParamExpansions); raw != "" {
		var ids []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		s.Expansions = ids
	}

	for _, name := range validate.DetailFieldNames {
		if value := values.Get(name); value != "" {
			if s.BusinessDetails == nil {
				s.BusinessDetails = make(map[string]string)
			}
			s.BusinessDetails[name] = value
		}
	}
	return s
}

// Resolve picks between the URL and session values for one field: the URL
// wins whenever it carries a value.
func Resolve(urlValue, sessionValue string) string {
	if urlValue != "" {
		return urlValue
	}
	return sessionValue
}

// ResolveSession applies URL-over-session precedence field-wise, merging
// business details key-wise with URL keys winning.
func ResolveSession(fromURL, fromStore IntakeSession) IntakeSession {
	out := fromStore
	if fromURL.UseCase != "" {
		out.UseCase = fromURL.UseCase
	}
	if fromURL.Expansions != nil {
		out.Expansions = fromURL.Expansions
	}
	if fromURL.CampaignType != "" {
		out.CampaignType = fromURL.CampaignType
	}
	if len(fromURL.BusinessDetails) > 0 {
		merged := make(map[string]string, len(fromStore.BusinessDetails)+len(fromURL.BusinessDetails))
		for k, v := range fromStore.BusinessDetails {
			merged[k] = v
		}
		for k, v := range fromURL.BusinessDetails {
			merged[k] = v
		}
		out.BusinessDetails = merged
	}
	return out
}
