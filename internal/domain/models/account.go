package models

import "time"

// Account is a customer/prospect organization synced from the upstream CRM.
type Account struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Industry          string     `json:"industry,omitempty"`
	Type              string     `json:"type,omitempty"`
	BillingCity       string     `json:"billingCity,omitempty"`
	BillingState      string     `json:"billingState,omitempty"`
	BillingCountry    string     `json:"billingCountry,omitempty"`
	NumberOfEmployees *int       `json:"numberOfEmployees"`
	AnnualRevenue     *float64   `json:"annualRevenue"`
	LastActivityDate  *time.Time `json:"lastActivityDate"`
}
