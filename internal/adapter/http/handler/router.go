package handler

import (
	"time"

	"transaction-anonymizer/internal/adapter/http/middleware"
	redisStore "transaction-anonymizer/internal/adapter/storage/redis"
	"transaction-anonymizer/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc          ports.AuthService
	CorpusSvc        ports.CorpusService
	MappingsProvider ports.MappingsProvider
	TokenSvc         ports.TokenService
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers   []ports.HealthChecker
	Logger           zerolog.Logger
	MinDelay         time.Duration
	MaxDelay         time.Duration
	DefaultPageSize  int
	MaxPageSize      int
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (no simulated latency)
	r.GET("/health", HealthCheck(deps.CorpusSvc, deps.HealthCheckers...))

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

	latency := middleware.SimulatedLatency(deps.MinDelay, deps.MaxDelay)

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	r.POST("/auth/login", rl("auth_login"), authHandler.Login)

	corpusHandler := NewCorpusHandler(deps.CorpusSvc, deps.DefaultPageSize, deps.MaxPageSize)
	corpus := r.Group("/", latency)
	{
		corpus.GET("/accounts", rl("corpus"), corpusHandler.ListAccounts)
		corpus.GET("/accounts/:id/transactions", rl("corpus"), corpusHandler.ListTransactions)
		corpus.GET("/accounts/:id/summary", rl("corpus"), corpusHandler.GetSummary)
		corpus.GET("/stats", rl("corpus"), corpusHandler.GetStats)
	}

	// --- JWT-authenticated routes (operator reports) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	reportHandler := NewReportHandler(deps.CorpusSvc, deps.MappingsProvider)
	reports := r.Group("/", jwtAuth)
	{
		reports.GET("/relationships", rl("reports"), reportHandler.GetRelationships)
		reports.GET("/mappings", rl("reports"), reportHandler.GetMappings)
	}

	return r
}
