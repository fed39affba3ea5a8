package app

import (
	"context"
	"net/http"

	"github.com/heartmarshall/campusdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/campusdesk-backend/internal/transport/rest"
)

// NewHandler builds the HTTP handler tree. Probes and /metrics are public;
// everything else requires an authenticated actor. The returned stop
// function releases the rate limiter.
func NewHandler(d *Deps) (http.Handler, func()) {
	cfg := d.Config
	log := d.Logger

	api := http.NewServeMux()
	rest.Handlers{
		Users:         rest.NewUserHandler(d.Admin, log),
		Settings:      rest.NewSettingsHandler(d.Admin, log),
		Grievances:    rest.NewGrievanceHandler(d.Admin, log),
		Opportunities: rest.NewOpportunityHandler(d.Admin, log),
		Courses:       rest.NewCourseHandler(d.Admin, log),
	}.Register(api)

	health := rest.NewHealthHandler(d.Pool, BuildVersion())
	if d.Cache != nil {
		health.WithComponent("cache", rest.PingFunc(func(ctx context.Context) error {
			return d.Cache.Ping(ctx)
		}))
	}

	root := http.NewServeMux()
	health.RegisterHealth(root)
	root.Handle("GET /metrics", d.Metrics.Handler())
	root.Handle("/", middleware.Chain(
		middleware.Auth(d.JWT),
		middleware.RequireActor,
		middleware.Metrics(d.Metrics),
	)(api))

	var (
		limit middleware.Middleware
		stop  = func() {}
	)
	if cfg.RateLimit.Enabled {
		// Validated at config load.
		trusted, _ := cfg.RateLimit.TrustedPrefixes()
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSec, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval, trusted...)
		limit, stop = rl.Limit(), rl.Stop
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
		limit,
	)(root), stop
}
