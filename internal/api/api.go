// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/incial/stockflow/internal/api/handlers"
	"github.com/incial/stockflow/internal/api/middleware"
	"github.com/incial/stockflow/internal/auth"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository"
	"github.com/incial/stockflow/internal/service"
)

type Services struct {
	Auth    *auth.Service
	Catalog repository.CatalogRepository
	Entries *service.EntryService
	Reports *service.ReportService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(services.Auth)
	apiGroup.POST("/auth/login", authHandler.Login)

	authed := apiGroup.Group("", auth.RequireAuth(services.Auth))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/me", authHandler.Me)

		catalogHandler := handlers.NewCatalogHandler(services.Catalog)
		authed.GET("/catalog/outlets", catalogHandler.GetOutlets)
		authed.GET("/catalog/products", catalogHandler.GetProducts)

		entryHandler := handlers.NewEntryHandler(services.Entries, services.Reports)
		authed.POST("/entries", auth.RequireRole(domain.RoleRefiller), entryHandler.Create)
		authed.GET("/entries", auth.RequireRole(domain.RoleAdmin), entryHandler.List)

		reportHandler := handlers.NewReportHandler(services.Reports)
		reportGroup := authed.Group("/reports", auth.RequireRole(domain.RoleAdmin))
		{
			reportGroup.GET("/pivot", reportHandler.GetPivot)
			reportGroup.GET("/summary", reportHandler.GetSummary)
			reportGroup.GET("/trend", reportHandler.GetTrend)
			reportGroup.GET("/profit_by_outlet", reportHandler.GetProfitByOutlet)
			reportGroup.GET("/dates", reportHandler.GetAvailableDates)
			reportGroup.POST("/export", reportHandler.Export)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
