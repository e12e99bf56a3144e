package services

import (
	"context"

	"crm-backend/internal/domain/models"
	"crm-backend/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// KanbanService shapes the pipeline board: one column per stage, in stage
// sort order, filled with the scoped opportunities.
type KanbanService struct {
	Stages        repositories.StageRepository
	Opportunities repositories.OpportunityRepository
	RequestID     string
}

type KanbanBoard struct {
	Columns []models.KanbanColumn `json:"columns"`
}

func (s KanbanService) Board(ctx context.Context, seFilter string) (KanbanBoard, error) {
	var (
		stages []models.Stage
		opps   []models.Opportunity
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stages, err = s.Stages.ListStages()
		return err
	})
	g.Go(func() error {
		var err error
		opps, err = s.Opportunities.ListScoped(seFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		return KanbanBoard{}, err
	}

	return KanbanBoard{Columns: buildKanbanColumns(stages, opps)}, nil
}

// buildKanbanColumns places every opportunity in exactly one column. Stage
// names not present in opportunity_stages (sync drift) get trailing columns
// in first-seen order so nothing disappears from the board.
func buildKanbanColumns(stages []models.Stage, opps []models.Opportunity) []models.KanbanColumn {
	byStage := make(map[string][]models.Opportunity)
	extraOrder := []string{}
	knownStage := make(map[string]bool, len(stages))
	for _, st := range stages {
		knownStage[st.StageName] = true
	}

	for _, opp := range opps {
		if _, seen := byStage[opp.StageName]; !seen && !knownStage[opp.StageName] {
			extraOrder = append(extraOrder, opp.StageName)
		}
		byStage[opp.StageName] = append(byStage[opp.StageName], opp)
	}

	columns := make([]models.KanbanColumn, 0, len(stages)+len(extraOrder))
	for _, st := range stages {
		group := byStage[st.StageName]
		if group == nil {
			group = []models.Opportunity{}
		}
		columns = append(columns, models.KanbanColumn{Stage: st, Opportunities: group})
	}
	for _, name := range extraOrder {
		columns = append(columns, models.KanbanColumn{
			Stage:         models.Stage{StageName: name},
			Opportunities: byStage[name],
		})
	}
	return columns
}
