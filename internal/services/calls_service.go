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

// CallsService joins call transcripts onto accounts and opportunities.
type CallsService struct {
	Opportunities repositories.OpportunityRepository
	Calls         repositories.CallRepository
	RequestID     string
}

// AccountCallGroups is the account detail aggregate: every opportunity with
// its call group, plus calls not tied to any of the account's opportunities.
type AccountCallGroups struct {
	Opportunities []models.OpportunityWithCalls `json:"opportunities"`
	UnlinkedCalls []models.Call                 `json:"unlinkedCalls"`
}

// AccountOpportunitiesWithCalls fetches the account's opportunities and calls
// concurrently, then groups. The two reads are independent; both must land
// before shaping.
func (s CallsService) AccountOpportunitiesWithCalls(ctx context.Context, accountID string) (AccountCallGroups, error) {
	var (
		opps  []models.Opportunity
		calls []models.Call
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		opps, err = s.Opportunities.ListByAccount(accountID)
		return err
	})
	g.Go(func() error {
		var err error
		calls, err = s.Calls.ListByAccount(accountID)
		return err
	})
	if err := g.Wait(); err != nil {
		return AccountCallGroups{}, err
	}

	utils.LogEvent(s.RequestID, "calls", "account_aggregate",
		fmt.Sprintf("account_id=%s opportunities=%d calls=%d", accountID, len(opps), len(calls)))
	return groupCallsByOpportunity(opps, calls), nil
}

// groupCallsByOpportunity partitions calls by opportunity id, preserving the
// fetch order (started descending) within every group. A call whose
// opportunity id matches none of the account's opportunities is kept under
// unlinkedCalls rather than dropped; the stored pair is a sync artifact and
// the call should stay visible.
func groupCallsByOpportunity(opps []models.Opportunity, calls []models.Call) AccountCallGroups {
	known := make(map[string]bool, len(opps))
	for _, opp := range opps {
		known[opp.ID] = true
	}

	byOpp := make(map[string][]models.Call)
	unlinked := []models.Call{}
	for _, call := range calls {
		if call.OpportunityID != nil && known[*call.OpportunityID] {
			byOpp[*call.OpportunityID] = append(byOpp[*call.OpportunityID], call)
			continue
		}
		unlinked = append(unlinked, call)
	}

	out := make([]models.OpportunityWithCalls, 0, len(opps))
	for _, opp := range opps {
		group := byOpp[opp.ID]
		if group == nil {
			group = []models.Call{}
		}
		out = append(out, models.OpportunityWithCalls{Opportunity: opp, Calls: group})
	}

	return AccountCallGroups{Opportunities: out, UnlinkedCalls: unlinked}
}

// SearchCalls pages through calls across accounts; page and count run
// concurrently like the account listing.
func (s CallsService) SearchCalls(ctx context.Context, q string, page domain.PageRequest) (domain.Paginated[models.CallSummary], error) {
	var (
		data  []models.CallSummary
		total int
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data, err = s.Calls.Search(q, page.PageSize, page.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Calls.CountSearch(q)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Paginated[models.CallSummary]{}, err
	}

	return domain.NewPaginated(data, total, page), nil
}
