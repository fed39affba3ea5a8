// Package policy implements the policy store: named configuration sections
// that are read, partially updated and reset one section at a time.
package policy

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// policyRepo defines the persistence needed by the policy store.
type policyRepo interface {
	Get(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, error)
	GetForUpdate(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, error)
	InsertIfAbsent(ctx context.Context, rec domain.PolicyRecord) (bool, error)
	Save(ctx context.Context, rec domain.PolicyRecord) (domain.PolicyRecord, error)
}

// sectionCache is a fail-safe byte cache. Errors are treated as misses.
// SetIfNewer must never replace an entry holding a later version.
type sectionCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetIfNewer(ctx context.Context, key string, value []byte, version int, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// txManager defines the transaction manager interface needed by the policy store.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the policy store.
type Service struct {
	log   *slog.Logger
	repo  policyRepo
	cache sectionCache
	tx    txManager
	ttl   time.Duration
	now   func() time.Time
}

// NewService creates a new policy store. cache may be nil.
func NewService(logger *slog.Logger, repo policyRepo, cache sectionCache, tx txManager, ttl time.Duration) *Service {
	return &Service{
		log:   logger.With("service", "policy"),
		repo:  repo,
		cache: cache,
		tx:    tx,
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func cacheKey(section domain.PolicySection) string {
	return "campusdesk:policy:" + string(section)
}

// cachedRecord is the cache representation of a PolicyRecord. The cache
// compares Version, so the JSON name must stay "version".
type cachedRecord struct {
	Document  domain.PolicyDocument `json:"document"`
	Version   int                   `json:"version"`
	UpdatedAt time.Time             `json:"updatedAt"`
	UpdatedBy *string               `json:"updatedBy,omitempty"`
}

func (s *Service) fromCache(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, bool) {
	if s.cache == nil {
		return domain.PolicyRecord{}, false
	}
	raw, err := s.cache.Get(ctx, cacheKey(section))
	if err != nil || raw == nil {
		return domain.PolicyRecord{}, false
	}

	var c cachedRecord
	if err := json.Unmarshal(raw, &c); err != nil {
		s.log.WarnContext(ctx, "discarding malformed cached section",
			slog.String("section", section.String()), slog.String("error", err.Error()))
		return domain.PolicyRecord{}, false
	}

	rec := domain.PolicyRecord{
		Section:   section,
		Document:  c.Document,
		Version:   c.Version,
		UpdatedAt: c.UpdatedAt,
	}
	if c.UpdatedBy != nil {
		if id, err := uuid.Parse(*c.UpdatedBy); err == nil {
			rec.UpdatedBy = &id
		}
	}
	return rec, true
}

// toCache stores rec unless the cache already holds a later version of the
// section, so a slow read cannot shadow a write that committed after it.
func (s *Service) toCache(ctx context.Context, rec domain.PolicyRecord) {
	if s.cache == nil {
		return
	}
	c := cachedRecord{Document: rec.Document, Version: rec.Version, UpdatedAt: rec.UpdatedAt}
	if rec.UpdatedBy != nil {
		id := rec.UpdatedBy.String()
		c.UpdatedBy = &id
	}
	raw, err := json.Marshal(c)
	if err != nil {
		s.log.WarnContext(ctx, "evicting uncacheable section",
			slog.String("section", rec.Section.String()), slog.String("error", err.Error()))
		s.invalidate(ctx, rec.Section)
		return
	}
	_ = s.cache.SetIfNewer(ctx, cacheKey(rec.Section), raw, rec.Version, s.ttl)
}

func (s *Service) invalidate(ctx context.Context, section domain.PolicySection) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, cacheKey(section))
}
