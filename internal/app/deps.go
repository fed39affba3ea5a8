package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campusdesk-backend/internal/adapter/cache"
	"github.com/heartmarshall/campusdesk-backend/internal/adapter/mailer"
	"github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/audit"
	courserepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/course"
	grievancerepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/grievance"
	opportunityrepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/opportunity"
	policyrepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/policy"
	tokenrepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/campusdesk-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/campusdesk-backend/internal/auth"
	"github.com/heartmarshall/campusdesk-backend/internal/config"
	"github.com/heartmarshall/campusdesk-backend/internal/metrics"
	"github.com/heartmarshall/campusdesk-backend/internal/service/admin"
	"github.com/heartmarshall/campusdesk-backend/internal/service/audit"
	"github.com/heartmarshall/campusdesk-backend/internal/service/policy"
	"github.com/heartmarshall/campusdesk-backend/internal/service/sweep"
)

const appName = "Campus Console"

// Deps holds the wired object graph shared by the server and the operator
// commands.
type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Pool    *pgxpool.Pool
	Cache   *cache.Client // nil when Redis is not configured
	Metrics *metrics.Metrics

	Users  *userrepo.Repo
	Tokens *tokenrepo.Repo
	JWT    *auth.JWTManager

	Policies *policy.Service
	Audit    *audit.Service
	Admin    *admin.Service
	Sweep    *sweep.Service
}

// Build connects to the database (and Redis if configured) and wires every
// service. The returned cleanup closes the connections.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Deps, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("app.Build: %w", err)
	}

	d := &Deps{
		Config:  cfg,
		Logger:  logger,
		Pool:    pool,
		Metrics: metrics.New(),
	}
	d.Metrics.SetBuildInfo(Version, Commit)

	cleanup := func() {
		if d.Cache != nil {
			if err := d.Cache.Close(); err != nil {
				logger.Warn("close cache", slog.String("error", err.Error()))
			}
		}
		pool.Close()
	}

	tx := postgres.NewTxManager(pool)

	// A typed nil *cache.Client must not reach the policy store.
	var sections interface {
		Get(ctx context.Context, key string) ([]byte, error)
		SetIfNewer(ctx context.Context, key string, value []byte, version int, ttl time.Duration) error
		Delete(ctx context.Context, key string) error
	}
	if cfg.Redis.Enabled() {
		d.Cache = cache.New(logger, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Timeout)
		sections = d.Cache
		logger.Info("policy cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	d.Users = userrepo.New(pool)
	d.Tokens = tokenrepo.New(pool)
	d.JWT = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	grievances := grievancerepo.New(pool)
	opportunities := opportunityrepo.New(pool)

	d.Policies = policy.NewService(logger, policyrepo.New(pool), sections, tx, cfg.Redis.CacheTTL)
	d.Audit = audit.NewService(logger, auditrepo.New(pool))

	resetter := auth.NewResetIssuer(logger, d.Tokens, mailer.NewConsole(logger, appName),
		cfg.Auth.ResetTokenTTL, cfg.Auth.ResetURLBase)

	d.Admin = admin.NewService(logger,
		d.Users, grievances, opportunities, courserepo.New(pool),
		d.Audit, d.Policies, resetter, tx, d.Metrics,
	)
	d.Sweep = sweep.NewService(logger,
		grievances, opportunities, d.Audit, d.Policies, tx, d.Metrics,
		sweep.Options{BatchSize: cfg.Sweep.BatchSize, DryRun: cfg.Sweep.DryRun},
	)

	return d, cleanup, nil
}
