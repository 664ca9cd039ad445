package estimate

import "context"

type Repository interface {
	Create(ctx context.Context, b *CostBreakdown) error
	GetByClaimID(ctx context.Context, claimID uint64) (*CostBreakdown, error)
	Save(ctx context.Context, b *CostBreakdown) error
}
