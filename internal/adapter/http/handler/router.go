package handler

import (
	"qa-banking-sandbox/internal/adapter/http/middleware"
	"qa-banking-sandbox/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	ProductSvc     ports.ProductService
	ReportingSvc   ports.ReportingService
	RateLimitStore *middleware.RateLimitStore // nil = rate limiting disabled
	MaxBodyBytes   int64
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Health + metrics
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	accountHandler := NewAccountHandler(deps.ReportingSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.GET("", rl("reads"), accountHandler.ListAccounts)
		accounts.GET("/:id", rl("reads"), accountHandler.GetAccount)
		accounts.GET("/:id/transactions", rl("reads"), accountHandler.ListAccountTransactions)
	}
	v1.GET("/transactions", rl("reads"), accountHandler.ListTransactions)

	transferHandler := NewTransferHandler(deps.LedgerSvc)
	v1.POST("/transfers", rl("transfers"), transferHandler.CreateTransfer)
	v1.POST("/topups", rl("topups"), transferHandler.CreateTopUp)

	catalogHandler := NewCatalogHandler(deps.ReportingSvc)
	v1.GET("/recipients", rl("reads"), catalogHandler.ListRecipients)
	v1.GET("/cards", rl("reads"), catalogHandler.ListCards)

	productHandler := NewProductHandler(deps.ProductSvc, deps.ReportingSvc)
	requests := v1.Group("/requests")
	{
		requests.GET("", rl("reads"), productHandler.ListProductRequests)
		requests.POST("", rl("requests"), productHandler.CreateProductRequest)
	}

	return r
}
