package models

import "time"

// CallParticipant is tagged internal (our side) or external (customer side).
type CallParticipant struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Affiliation string `json:"affiliation"`
}

// Call is a transcript record. A call may reference an opportunity, an
// account, both, or neither; the stored pair is trusted as-is.
type Call struct {
	ID            string            `json:"id"`
	AccountID     *string           `json:"accountId"`
	OpportunityID *string           `json:"opportunityId"`
	Title         string            `json:"title"`
	Started       time.Time         `json:"started"`
	Duration      int               `json:"duration"`
	Media         string            `json:"media,omitempty"`
	Participants  []CallParticipant `json:"participants"`
}

// CallSummary adds joined display names for the cross-account call listing.
type CallSummary struct {
	Call
	AccountName     string `json:"accountName,omitempty"`
	OpportunityName string `json:"opportunityName,omitempty"`
}
