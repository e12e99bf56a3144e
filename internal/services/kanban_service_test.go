package services

import (
	"testing"

	"crm-backend/internal/domain/models"
)

func TestBuildKanbanColumnsStageOrder(t *testing.T) {
	stages := []models.Stage{
		{ID: "s1", StageName: "Discovery", SortOrder: 1},
		{ID: "s2", StageName: "Proposal", SortOrder: 2},
		{ID: "s3", StageName: "Closed Won", SortOrder: 3},
	}
	opps := []models.Opportunity{
		{ID: "O1", StageName: "Proposal"},
		{ID: "O2", StageName: "Discovery"},
		{ID: "O3", StageName: "Proposal"},
	}

	cols := buildKanbanColumns(stages, opps)

	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	if cols[0].Stage.StageName != "Discovery" || len(cols[0].Opportunities) != 1 {
		t.Fatalf("discovery column wrong: %+v", cols[0])
	}
	if len(cols[1].Opportunities) != 2 {
		t.Fatalf("proposal column should hold 2, got %d", len(cols[1].Opportunities))
	}
	if len(cols[2].Opportunities) != 0 {
		t.Fatalf("empty stage should keep an empty column")
	}
}

func TestBuildKanbanColumnsUnknownStageGetsTrailingColumn(t *testing.T) {
	stages := []models.Stage{{ID: "s1", StageName: "Discovery", SortOrder: 1}}
	opps := []models.Opportunity{
		{ID: "O1", StageName: "Discovery"},
		{ID: "O2", StageName: "Legacy Stage"},
	}

	cols := buildKanbanColumns(stages, opps)

	if len(cols) != 2 {
		t.Fatalf("expected trailing column for unknown stage, got %d columns", len(cols))
	}
	if cols[1].Stage.StageName != "Legacy Stage" || len(cols[1].Opportunities) != 1 {
		t.Fatalf("unknown-stage column wrong: %+v", cols[1])
	}

	total := 0
	for _, col := range cols {
		total += len(col.Opportunities)
	}
	if total != len(opps) {
		t.Fatalf("opportunities lost: placed=%d input=%d", total, len(opps))
	}
}
