package claimmock

import (
	"context"

	domain "claims-backend/internal/domain/claim"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                    func(ctx context.Context, c *domain.Claim) error
	GetByIDFn                   func(ctx context.Context, id uint64) (*domain.Claim, error)
	GetByClaimNumberFn          func(ctx context.Context, claimNumber string) (*domain.Claim, error)
	GetByClaimNumberForUpdateFn func(ctx context.Context, claimNumber string) (*domain.Claim, error)
	ListFn                      func(ctx context.Context, f domain.ListFilter) ([]domain.Claim, error)
	SaveFn                      func(ctx context.Context, c *domain.Claim) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByClaimNumber(ctx context.Context, claimNumber string) (*domain.Claim, error) {
	if m.GetByClaimNumberFn != nil {
		return m.GetByClaimNumberFn(ctx, claimNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByClaimNumberForUpdate(ctx context.Context, claimNumber string) (*domain.Claim, error) {
	if m.GetByClaimNumberForUpdateFn != nil {
		return m.GetByClaimNumberForUpdateFn(ctx, claimNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Claim, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
