package handlers

import (
	"net/http"

	"crm-backend/internal/domain"
	"crm-backend/internal/http/middleware"
	"crm-backend/internal/repositories"
	"crm-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/opportunities/kanban
func GetOpportunityKanban(c *gin.Context) {
	seFilter, err := domain.EffectiveSEFilter(middleware.CurrentIdentity(c), c.Query("assignedSeUserId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.KanbanService{
		Stages:        repositories.StageRepository{},
		Opportunities: repositories.OpportunityRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
	board, err := svc.Board(c.Request.Context(), seFilter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
