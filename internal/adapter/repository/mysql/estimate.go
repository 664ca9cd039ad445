package mysql

import (
	"context"

	estimateDomain "claims-backend/internal/domain/estimate"

	"gorm.io/gorm"
)

type EstimateRepository struct{ db *gorm.DB }

func NewEstimateRepository(db *gorm.DB) *EstimateRepository { return &EstimateRepository{db: db} }

func (r *EstimateRepository) Create(ctx context.Context, b *estimateDomain.CostBreakdown) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *EstimateRepository) Save(ctx context.Context, b *estimateDomain.CostBreakdown) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// GetByClaimID returns the newest breakdown for the claim. The single-breakdown
// rule is an access-pattern rule, so order defensively by recency.
func (r *EstimateRepository) GetByClaimID(ctx context.Context, claimID uint64) (*estimateDomain.CostBreakdown, error) {
	var out estimateDomain.CostBreakdown
	res := r.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}
