package photomock

import (
	"context"

	domain "claims-backend/internal/domain/photo"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, p *domain.DamagePhoto) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.DamagePhoto, error)
	ListByClaimIDFn func(ctx context.Context, claimID uint64) ([]domain.DamagePhoto, error)
	DeleteFn        func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, p *domain.DamagePhoto) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.DamagePhoto, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByClaimID(ctx context.Context, claimID uint64) ([]domain.DamagePhoto, error) {
	if m.ListByClaimIDFn != nil {
		return m.ListByClaimIDFn(ctx, claimID)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
