package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-scanner/internal/services/health"
	"resume-scanner/internal/shared/config"
	"resume-scanner/internal/shared/metrics"
	"resume-scanner/internal/shared/server/middleware"
	"resume-scanner/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes.
type RouteRegistrar interface {
	RegisterRoutes(gin.IRoutes)
}

const scanRateLimitGroup = "SCAN"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, healthSvc *health.Service, features ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)
	if cfg.RateLimitEnabled() {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost {
					return scanRateLimitGroup
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				scanRateLimitGroup: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		status := healthSvc.Status()
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	r.GET("/metrics", metrics.Handler())

	for _, f := range features {
		f.RegisterRoutes(r)
	}
	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
