package handlers

import (
	"net/http"

	"crm-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/calls
func SearchCalls(c *gin.Context) {
	page := domain.ParsePagination(c.Query("page"), c.Query("pageSize"))

	result, err := callsService(c).SearchCalls(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
