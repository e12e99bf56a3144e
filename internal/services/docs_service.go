package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"crm-backend/internal/repositories"
	"crm-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the account summary PDF for export.
type DocsService struct {
	Accounts      repositories.AccountRepository
	Opportunities repositories.OpportunityRepository
	Contacts      repositories.ContactRepository
	RequestID     string
	Loader        func(string) (accountSummaryData, error)
}

type accountSummaryData struct {
	AccountID      string
	Name           string
	Industry       string
	Type           string
	BillingCity    string
	BillingCountry string
	Opportunities  []summaryOpportunity
	Contacts       []summaryContact
}

type summaryOpportunity struct {
	Name      string
	StageName string
	Amount    float64
	CloseDate string
}

type summaryContact struct {
	Name  string
	Email string
}

func (s DocsService) GenerateAccountSummary(accountID string) ([]byte, string, error) {
	data, err := s.loadAccountSummaryData(accountID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_account_summary", fmt.Sprintf("account_id=%s", accountID))
	return buildAccountSummaryPDF(data)
}

func (s DocsService) loadAccountSummaryData(accountID string) (accountSummaryData, error) {
	if s.Loader != nil {
		return s.Loader(accountID)
	}

	var out accountSummaryData
	acc, err := s.Accounts.GetByID(accountID)
	if err != nil {
		return out, err
	}
	out.AccountID = acc.ID
	out.Name = acc.Name
	out.Industry = acc.Industry
	out.Type = acc.Type
	out.BillingCity = acc.BillingCity
	out.BillingCountry = acc.BillingCountry

	opps, err := s.Opportunities.ListByAccount(accountID)
	if err != nil {
		return out, err
	}
	for _, opp := range opps {
		so := summaryOpportunity{Name: opp.Name, StageName: opp.StageName}
		if opp.Amount != nil {
			so.Amount = *opp.Amount
		}
		if opp.CloseDate != nil {
			so.CloseDate = opp.CloseDate.Format("2006-01-02")
		}
		out.Opportunities = append(out.Opportunities, so)
	}

	contacts, err := s.Contacts.ListByAccount(accountID)
	if err != nil {
		return out, err
	}
	for _, ct := range contacts {
		name := strings.TrimSpace(ct.FirstName + " " + ct.LastName)
		out.Contacts = append(out.Contacts, summaryContact{Name: name, Email: ct.Email})
	}

	return out, nil
}

func buildAccountSummaryPDF(d accountSummaryData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Account Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ACCOUNT SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Account   : %s", safe(d.Name, "-")),
		fmt.Sprintf("Industry  : %s", safe(d.Industry, "-")),
		fmt.Sprintf("Type      : %s", safe(d.Type, "-")),
		fmt.Sprintf("Location  : %s", safe(strings.TrimSpace(strings.Trim(d.BillingCity+", "+d.BillingCountry, ", ")), "-")),
		fmt.Sprintf("Generated : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Opportunities (%d)", len(d.Opportunities)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Opportunities) == 0 {
		pdf.Cell(0, 6, "none")
		pdf.Ln(6)
	}
	for _, opp := range d.Opportunities {
		pdf.MultiCell(0, 6, fmt.Sprintf("- %s | %s | %s | close %s",
			safe(opp.Name, "-"), safe(opp.StageName, "-"), formatAmount(opp.Amount), safe(opp.CloseDate, "-"),
		), "", "", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Contacts (%d)", len(d.Contacts)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Contacts) == 0 {
		pdf.Cell(0, 6, "none")
		pdf.Ln(6)
	}
	for _, ct := range d.Contacts {
		pdf.Cell(0, 6, fmt.Sprintf("- %s  %s", safe(ct.Name, "-"), ct.Email))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ACCOUNT_%s.pdf", safeFilenamePart(d.Name))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
	if out == "" {
		return "account"
	}
	return out
}

func formatAmount(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("$%.2f", v)
}
