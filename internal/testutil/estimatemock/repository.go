package estimatemock

import (
	"context"

	domain "claims-backend/internal/domain/estimate"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, b *domain.CostBreakdown) error
	GetByClaimIDFn func(ctx context.Context, claimID uint64) (*domain.CostBreakdown, error)
	SaveFn         func(ctx context.Context, b *domain.CostBreakdown) error
}

func (m *Repo) Create(ctx context.Context, b *domain.CostBreakdown) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByClaimID(ctx context.Context, claimID uint64) (*domain.CostBreakdown, error) {
	if m.GetByClaimIDFn != nil {
		return m.GetByClaimIDFn(ctx, claimID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, b *domain.CostBreakdown) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}
