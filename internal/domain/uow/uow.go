package uow

import (
	"context"

	"claims-backend/internal/domain/claim"
	"claims-backend/internal/domain/estimate"
	"claims-backend/internal/domain/photo"
)

type Repos struct {
	Claims    claim.Repository
	Photos    photo.Repository
	Estimates estimate.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock claim first, then pass it in
	WithinClaimTx(ctx context.Context, claimNumber string, fn func(r Repos, c *claim.Claim) error) error
}
