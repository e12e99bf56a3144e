package api

import (
	"log"
	stdhttp "net/http"

	intconfig "crm-backend/internal/config"
	h "crm-backend/internal/http/handlers"
	"crm-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)

		secured := api.Group("", middleware.RequireAuth([]byte(env.JWTSecret)))

		accounts := secured.Group("/accounts")
		accounts.GET("", h.ListAccounts)
		accounts.GET("/:id", h.GetAccount)
		accounts.GET("/:id/opportunities", h.GetAccountOpportunities)
		accounts.GET("/:id/opportunities-with-calls", h.GetAccountOpportunitiesWithCalls)
		accounts.GET("/:id/contacts", h.GetAccountContacts)
		accounts.GET("/:id/activities", h.GetAccountActivities)
		accounts.GET("/:id/summary.pdf", h.GetAccountSummaryPDF)

		secured.GET("/opportunities/kanban", h.GetOpportunityKanban)

		secured.GET("/calls", h.SearchCalls)
	}

	return r
}
