package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/campusdesk-backend/internal/domain"
)

func checkSection(section domain.PolicySection) error {
	if !section.IsValid() {
		return domain.NewValidationError("section", "unknown policy section")
	}
	return nil
}

// Get returns the current document of section. A section that was never
// saved is created from the built-in default on first access, so every
// section exists from then on.
func (s *Service) Get(ctx context.Context, section domain.PolicySection) (domain.PolicyRecord, error) {
	if err := checkSection(section); err != nil {
		return domain.PolicyRecord{}, err
	}

	if rec, ok := s.fromCache(ctx, section); ok {
		return rec, nil
	}

	rec, err := s.repo.Get(ctx, section)
	if errors.Is(err, domain.ErrNotFound) {
		if err := s.ensure(ctx, section); err != nil {
			return domain.PolicyRecord{}, fmt.Errorf("policy.Get: %w", err)
		}
		rec, err = s.repo.Get(ctx, section)
	}
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("policy.Get: %w", err)
	}

	s.toCache(ctx, rec)
	return rec, nil
}

// All returns every section in display order.
func (s *Service) All(ctx context.Context) ([]domain.PolicyRecord, error) {
	out := make([]domain.PolicyRecord, 0, len(domain.AllPolicySections))
	for _, section := range domain.AllPolicySections {
		rec, err := s.Get(ctx, section)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Set shallow-merges partial into section: each given key replaces the stored
// value wholesale, all other keys are kept. Known keys are type-checked and
// unknown keys are stored as-is. When expectedVersion is non-nil and does not
// match the stored version the call fails with ErrConflict.
func (s *Service) Set(ctx context.Context, section domain.PolicySection, partial domain.PolicyDocument, by domain.Actor, expectedVersion *int) (domain.PolicyRecord, error) {
	if err := checkSection(section); err != nil {
		return domain.PolicyRecord{}, err
	}
	if len(partial) == 0 {
		return domain.PolicyRecord{}, domain.NewValidationError("values", "at least one option is required")
	}

	rec, err := s.write(ctx, section, by, expectedVersion, func(cur domain.PolicyDocument) domain.PolicyDocument {
		return cur.Merge(partial)
	})
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("policy.Set: %w", err)
	}

	keys := make([]string, 0, len(partial))
	for k := range partial {
		keys = append(keys, k)
	}
	s.log.InfoContext(ctx, "policy section saved",
		slog.String("section", section.String()),
		slog.Int("version", rec.Version),
		slog.String("actor_id", by.ID.String()),
		slog.Any("keys", keys),
	)
	return rec, nil
}

// Reset replaces section with its built-in default.
func (s *Service) Reset(ctx context.Context, section domain.PolicySection, by domain.Actor) (domain.PolicyRecord, error) {
	if err := checkSection(section); err != nil {
		return domain.PolicyRecord{}, err
	}

	rec, err := s.write(ctx, section, by, nil, func(domain.PolicyDocument) domain.PolicyDocument {
		return domain.DefaultPolicyDocument(section)
	})
	if err != nil {
		return domain.PolicyRecord{}, fmt.Errorf("policy.Reset: %w", err)
	}

	s.log.InfoContext(ctx, "policy section reset",
		slog.String("section", section.String()),
		slog.Int("version", rec.Version),
		slog.String("actor_id", by.ID.String()),
	)
	return rec, nil
}

// write applies change to the locked section row and bumps its version.
func (s *Service) write(
	ctx context.Context,
	section domain.PolicySection,
	by domain.Actor,
	expectedVersion *int,
	change func(domain.PolicyDocument) domain.PolicyDocument,
) (domain.PolicyRecord, error) {
	var saved domain.PolicyRecord

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensure(txCtx, section); err != nil {
			return err
		}

		cur, err := s.repo.GetForUpdate(txCtx, section)
		if err != nil {
			return fmt.Errorf("lock section: %w", err)
		}

		if expectedVersion != nil && *expectedVersion != cur.Version {
			return fmt.Errorf("section %s is at version %d, expected %d: %w",
				section, cur.Version, *expectedVersion, domain.ErrConflict)
		}

		next := change(cur.Document)
		if err := domain.ValidatePolicyDocument(section, next); err != nil {
			return err
		}

		rec := domain.PolicyRecord{
			Section:   section,
			Document:  next,
			Version:   cur.Version + 1,
			UpdatedAt: s.now(),
		}
		if by.ID != uuid.Nil {
			id := by.ID
			rec.UpdatedBy = &id
		}

		saved, err = s.repo.Save(txCtx, rec)
		if err != nil {
			return fmt.Errorf("save section: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.PolicyRecord{}, err
	}

	s.toCache(ctx, saved)
	return saved, nil
}

// ensure persists the default of section unless a row already exists.
func (s *Service) ensure(ctx context.Context, section domain.PolicySection) error {
	inserted, err := s.repo.InsertIfAbsent(ctx, domain.PolicyRecord{
		Section:   section,
		Document:  domain.DefaultPolicyDocument(section),
		Version:   1,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("insert default section: %w", err)
	}
	if inserted {
		s.log.InfoContext(ctx, "policy section initialised from default", slog.String("section", section.String()))
	}
	return nil
}

// GrievancePolicy returns the typed grievance section.
func (s *Service) GrievancePolicy(ctx context.Context) (domain.GrievancePolicy, error) {
	rec, err := s.Get(ctx, domain.PolicySectionGrievance)
	if err != nil {
		return domain.GrievancePolicy{}, err
	}
	p, err := domain.DecodeGrievancePolicy(rec.Document)
	if err != nil {
		return domain.GrievancePolicy{}, fmt.Errorf("policy.GrievancePolicy: %w", err)
	}
	return p, nil
}

// OpportunityPolicy returns the typed opportunity section.
func (s *Service) OpportunityPolicy(ctx context.Context) (domain.OpportunityPolicy, error) {
	rec, err := s.Get(ctx, domain.PolicySectionOpportunity)
	if err != nil {
		return domain.OpportunityPolicy{}, err
	}
	p, err := domain.DecodeOpportunityPolicy(rec.Document)
	if err != nil {
		return domain.OpportunityPolicy{}, fmt.Errorf("policy.OpportunityPolicy: %w", err)
	}
	return p, nil
}
