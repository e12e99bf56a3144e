package handlers

import (
	"net/http"

	"crm-backend/internal/domain"
	"crm-backend/internal/http/middleware"
	"crm-backend/internal/repositories"
	"crm-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func accountsService(c *gin.Context) services.AccountsService {
	return services.AccountsService{
		Accounts:      repositories.AccountRepository{},
		Opportunities: repositories.OpportunityRepository{},
		Contacts:      repositories.ContactRepository{},
		Activities:    repositories.ActivityRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

func callsService(c *gin.Context) services.CallsService {
	return services.CallsService{
		Opportunities: repositories.OpportunityRepository{},
		Calls:         repositories.CallRepository{},
		RequestID:     middleware.GetRequestID(c),
	}
}

// GET /api/accounts
func ListAccounts(c *gin.Context) {
	seFilter, err := domain.EffectiveSEFilter(middleware.CurrentIdentity(c), c.Query("assignedSeUserId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	result, err := accountsService(c).ListAccounts(c.Request.Context(), services.ListAccountsInput{
		Search:   c.Query("search"),
		SEFilter: seFilter,
		Page:     domain.ParsePagination(c.Query("page"), c.Query("pageSize")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/accounts/:id
func GetAccount(c *gin.Context) {
	account, err := accountsService(c).GetAccount(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// GET /api/accounts/:id/opportunities
func GetAccountOpportunities(c *gin.Context) {
	opps, err := accountsService(c).GetAccountOpportunities(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, opps)
}

// GET /api/accounts/:id/opportunities-with-calls
func GetAccountOpportunitiesWithCalls(c *gin.Context) {
	result, err := callsService(c).AccountOpportunitiesWithCalls(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/accounts/:id/contacts
func GetAccountContacts(c *gin.Context) {
	contacts, err := accountsService(c).GetAccountContacts(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// GET /api/accounts/:id/activities
func GetAccountActivities(c *gin.Context) {
	activities, err := accountsService(c).GetAccountActivities(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
