package mysql

import (
	"context"

	"claims-backend/internal/domain/claim"
	"claims-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Claims:    &ClaimRepository{db: tx},
		Photos:    &PhotoRepository{db: tx},
		Estimates: &EstimateRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinClaimTx(ctx context.Context, claimNumber string, fn func(r uow.Repos, c *claim.Claim) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the claim row up-front to prevent races
		c, err := r.Claims.GetByClaimNumberForUpdate(ctx, claimNumber)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
