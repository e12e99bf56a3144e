package handlers

import (
	"net/http"

	"crm-backend/internal/http/middleware"
	"crm-backend/internal/repositories"
	"crm-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/accounts/:id/summary.pdf
func GetAccountSummaryPDF(c *gin.Context) {
	svc := services.DocsService{
		Accounts:      repositories.AccountRepository{},
		Opportunities: repositories.OpportunityRepository{},
		Contacts:      repositories.ContactRepository{},
		RequestID:     middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.GenerateAccountSummary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
