package services

import (
	"strings"
	"testing"
)

func TestDocsServiceGenerateAccountSummary(t *testing.T) {
	loader := func(id string) (accountSummaryData, error) {
		return accountSummaryData{
			AccountID:      id,
			Name:           "Acme Corp",
			Industry:       "Software",
			Type:           "Customer",
			BillingCity:    "Austin",
			BillingCountry: "US",
			Opportunities: []summaryOpportunity{
				{Name: "Expansion", StageName: "Proposal", Amount: 50000, CloseDate: "2024-06-01"},
			},
			Contacts: []summaryContact{
				{Name: "Ana Diaz", Email: "ana@acme.test"},
			},
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateAccountSummary("a-1")
	if err != nil {
		t.Fatalf("GenerateAccountSummary returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateAccountSummary returned empty data")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("Acme Corp / EMEA"); got != "Acme_Corp___EMEA" {
		t.Fatalf("unexpected filename part: %s", got)
	}
	if got := safeFilenamePart("  "); got != "account" {
		t.Fatalf("empty name should fall back, got %s", got)
	}
}
