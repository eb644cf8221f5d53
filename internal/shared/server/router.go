package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/shared/config"
	"sitestudio-backend/internal/shared/metrics"
	"sitestudio-backend/internal/shared/server/middleware"
	"sitestudio-backend/internal/shared/server/respond"
)

const (
	rateGroupCompose = "COMPOSE"
	rateGroupOpen    = "OPEN"
)

// RouteRegistrar is implemented by feature handlers that own routes under /api/v1.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps lists what NewRouter wires.
type RouterDeps struct {
	Config   config.Config
	Handlers []RouteRegistrar
	// Limiter is shared across requests; nil builds a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	secured := api.Group("")
	secured.Use(
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupOpen,
			GroupFor:     rateGroupFor,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupCompose: {Rate: deps.Config.ComposeRate, Burst: deps.Config.ComposeBurst},
			},
		}),
	)
	registerWhoAmIRoutes(secured)
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(secured)
		}
	}

	return r
}

// rateGroupFor limits every mutating call; reads are unlimited.
func rateGroupFor(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		return rateGroupCompose
	}
	return rateGroupOpen
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
