// Package session carries accumulated wizard state between steps. The same
// logical state lives in two places: the URL query string (authoritative,
// bookmarkable) and a session-scoped store (fallback for back-navigation and
// truncated URLs). Reads prefer the URL; writes go through to the store on
// every meaningful action.
package session

import "github.com/relaykit/intake/pkg/catalog"

// IntakeSession is the accumulated wizard state for one browsing session.
type IntakeSession struct {
	UseCase         catalog.UseCaseID `json:"use_case,omitempty"`
	Expansions      []string          `json:"expansions,omitempty"`
	CampaignType    string            `json:"campaign_type,omitempty"`
	BusinessDetails map[string]string `json:"business_details,omitempty"`
}

// IsZero reports whether the session carries no state at all.
func (s IntakeSession) IsZero() bool {
	return s.UseCase == "" && s.Expansions == nil && s.CampaignType == "" && len(s.BusinessDetails) == 0
}

// Merge returns s with update applied: set top-level fields overwrite, unset
// ones survive. A non-nil (possibly empty) Expansions slice counts as set so
// a step can clear the selection. BusinessDetails merges key-wise: keys in
// the update overwrite, other keys survive.
func (s IntakeSession) Merge(update IntakeSession) IntakeSession {
	out := s
	if update.UseCase != "" {
		out.UseCase = update.UseCase
	}
	if update.Expansions != nil {
		out.Expansions = append([]string{}, update.Expansions...)
	}
	if update.CampaignType != "" {
		out.CampaignType = update.CampaignType
	}
	if len(update.BusinessDetails) > 0 {
		merged := make(map[string]string, len(s.BusinessDetails)+len(update.BusinessDetails))
		for k, v := range s.BusinessDetails {
			merged[k] = v
		}
		for k, v := range update.BusinessDetails {
			merged[k] = v
		}
		out.BusinessDetails = merged
	}
	return out
}
