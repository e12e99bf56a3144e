package models

import "time"

// Activity is an event-log entry against an account.
type Activity struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"accountId"`
	Subject      string     `json:"subject"`
	Description  string     `json:"description,omitempty"`
	ActivityDate *time.Time `json:"activityDate"`
}
