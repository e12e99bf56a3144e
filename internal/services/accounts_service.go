package services

import (
	"context"
	"fmt"

	"crm-backend/internal/domain"
	"crm-backend/internal/domain/models"
	"crm-backend/internal/repositories"
	"crm-backend/internal/utils"

	"golang.org/x/sync/errgroup"
)

// AccountsService serves the account list and the per-account sub-resources.
type AccountsService struct {
	Accounts      repositories.AccountRepository
	Opportunities repositories.OpportunityRepository
	Contacts      repositories.ContactRepository
	Activities    repositories.ActivityRepository
	RequestID     string
}

type ListAccountsInput struct {
	Search   string
	SEFilter string
	Page     domain.PageRequest
}

// ListAccounts runs the page query and the total count concurrently; both use
// the same filter predicate so the envelope stays consistent.
func (s AccountsService) ListAccounts(ctx context.Context, in ListAccountsInput) (domain.Paginated[models.Account], error) {
	var (
		data  []models.Account
		total int
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.Accounts.List(in.Search, in.SEFilter, in.Page.PageSize, in.Page.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Accounts.Count(in.Search, in.SEFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Paginated[models.Account]{}, err
	}

	utils.LogEvent(s.RequestID, "accounts", "list", fmt.Sprintf("total=%d page=%d", total, in.Page.Page))
	return domain.NewPaginated(data, total, in.Page), nil
}

func (s AccountsService) GetAccount(id string) (models.Account, error) {
	return s.Accounts.GetByID(id)
}

func (s AccountsService) GetAccountOpportunities(accountID string) ([]models.Opportunity, error) {
	return s.Opportunities.ListByAccount(accountID)
}

func (s AccountsService) GetAccountContacts(accountID string) ([]models.Contact, error) {
	return s.Contacts.ListByAccount(accountID)
}

func (s AccountsService) GetAccountActivities(accountID string) ([]models.Activity, error) {
	return s.Activities.ListByAccount(accountID)
}
