package admin

import (
	"context"
	"fmt"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

// GetSettings returns one policy section. Any authenticated actor may read.
func (s *Service) GetSettings(ctx context.Context, section domain.PolicySection, actor domain.Actor) (domain.PolicyRecord, error) {
	if err := requireActor(actor); err != nil {
		return domain.PolicyRecord{}, err
	}
	rec, err := s.policies.Get(ctx, section)
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("admin.GetSettings: %w", err)
	}
	return rec, nil
}

// ListSettings returns every policy section.
func (s *Service) ListSettings(ctx context.Context, actor domain.Actor) ([]domain.PolicyRecord, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	recs, err := s.policies.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListSettings: %w", err)
	}
	return recs, nil
}

// SaveSettings shallow-merges values into section.
func (s *Service) SaveSettings(ctx context.Context, section domain.PolicySection, values domain.PolicyDocument, expectedVersion *int, actor domain.Actor) (domain.PolicyRecord, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.PolicyRecord{}, err
	}
	rec, err := s.policies.Set(ctx, section, values, actor, expectedVersion)
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("admin.SaveSettings: %w", err)
	}
	return rec, nil
}

// ResetSettings restores section to its built-in default.
func (s *Service) ResetSettings(ctx context.Context, section domain.PolicySection, actor domain.Actor) (domain.PolicyRecord, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.PolicyRecord{}, err
	}
	rec, err := s.policies.Reset(ctx, section, actor)
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("admin.ResetSettings: %w", err)
	}
	return rec, nil
}
