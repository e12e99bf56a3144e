package models

// Stage is a pipeline step (kanban column).
type Stage struct {
	ID        string `json:"id"`
	StageName string `json:"stageName"`
	SortOrder int    `json:"sortOrder"`
}

type KanbanColumn struct {
	Stage         Stage         `json:"stage"`
	Opportunities []Opportunity `json:"opportunities"`
}
