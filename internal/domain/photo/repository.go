package photo

import "context"

type Repository interface {
	Create(ctx context.Context, p *DamagePhoto) error
	GetByID(ctx context.Context, id uint64) (*DamagePhoto, error)
	ListByClaimID(ctx context.Context, claimID uint64) ([]DamagePhoto, error)
	Delete(ctx context.Context, id uint64) error
}
