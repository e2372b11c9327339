package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/juris-api/internal/api/handlers"
	"github.com/nexconsult/juris-api/internal/api/middleware"
	"github.com/nexconsult/juris-api/internal/config"
	"github.com/nexconsult/juris-api/internal/services"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	Router      *gin.Engine
	RateLimiter *middleware.RateLimiter
	config      *config.Config
	logger      *logrus.Logger
	services    *services.Container
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger, services *services.Container) *Server {
	server := &Server{
		config:      cfg,
		logger:      logger,
		services:    services,
		RateLimiter: middleware.NewRateLimiter(cfg.Security.RateLimit),
	}

	server.setupRouter()
	return server
}

// setupRouter configures the router with all routes and middleware
func (s *Server) setupRouter() {
	s.Router = gin.New()

	// RequestID first so every later middleware sees it
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Logger(s.logger))
	s.Router.Use(middleware.Metrics(s.services.MetricsService))
	s.Router.Use(middleware.Recovery(s.logger))
	s.Router.Use(middleware.CORS(s.config.Security.CORS))
	s.Router.Use(middleware.Security())

	// Health and metrics are not rate limited
	healthHandler := handlers.NewHealthHandler(s.services, s.logger)
	s.Router.GET("/health", healthHandler.GetHealth)
	s.Router.GET("/health/ready", healthHandler.GetReadiness)
	s.Router.GET("/health/live", healthHandler.GetLiveness)

	metricsHandler := handlers.NewMetricsHandler(s.services, s.RateLimiter, s.logger)
	s.Router.GET("/metrics", metricsHandler.GetPrometheus)
	s.Router.GET("/metrics/summary", metricsHandler.GetMetrics)

	if !s.config.IsProduction() {
		s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		s.Router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})
	}

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.RateLimiter.Middleware())
	{
		documentHandler := handlers.NewDocumentHandler(s.services.ValidationService, s.logger)
		v1.GET("/documentos/:numero", documentHandler.GetDocument)
		v1.POST("/documentos/lote", documentHandler.ValidateBatch)
		v1.GET("/cpf/:cpf", documentHandler.GetCPF)
		v1.GET("/cnpj/:cnpj", documentHandler.GetCNPJ)

		processoHandler := handlers.NewProcessoHandler(s.services, s.config.Security.MaxBatch, s.logger)
		processos := v1.Group("/processos")
		{
			processos.GET("/:numero", processoHandler.GetCaseNumber)
			processos.GET("/:numero/datajud", processoHandler.GetDataJud)
			processos.POST("/datajud/lote", processoHandler.GetDataJudBatch)
		}

		tribunalHandler := handlers.NewTribunalHandler(s.services.ValidationService, s.logger)
		tribunais := v1.Group("/tribunais")
		{
			tribunais.GET("", tribunalHandler.List)
			tribunais.GET("/:chave", tribunalHandler.Get)
		}

		// Cache management (no auth for development)
		cacheHandler := handlers.NewCacheHandler(s.services.CacheService, s.logger)
		cache := v1.Group("/cache")
		{
			cache.GET("/stats", cacheHandler.GetStats)
			cache.DELETE("", cacheHandler.Clear)
			cache.DELETE("/processos/:numero", cacheHandler.Delete)
		}
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Not Found",
			"message":   "The requested resource was not found",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
		})
	})

	s.Router.HandleMethodNotAllowed = true
	s.Router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":     "Method Not Allowed",
			"message":   "The requested method is not allowed for this resource",
			"timestamp": time.Now(),
			"path":      c.Request.URL.Path,
			"method":    c.Request.Method,
		})
	})
}
