package models

import "time"

// Opportunity state is synced from the upstream CRM; this service only reads it.
type Opportunity struct {
	ID               string     `json:"id"`
	AccountID        string     `json:"accountId"`
	Name             string     `json:"name"`
	StageName        string     `json:"stageName"`
	Amount           *float64   `json:"amount"`
	CloseDate        *time.Time `json:"closeDate"`
	IsClosed         bool       `json:"isClosed"`
	IsWon            bool       `json:"isWon"`
	AssignedSEUserID *string    `json:"assignedSeUserId"`
}

// OpportunityWithCalls nests the opportunity's call group for the
// account detail view.
type OpportunityWithCalls struct {
	Opportunity
	Calls []Call `json:"calls"`
}
