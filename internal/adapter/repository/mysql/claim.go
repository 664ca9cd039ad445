package mysql

import (
	"context"

	claimDomain "claims-backend/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) GetByClaimNumber(ctx context.Context, claimNumber string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("claim_number = ?", claimNumber).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) GetByClaimNumberForUpdate(ctx context.Context, claimNumber string) (*claimDomain.Claim, error) {
	q := r.db.WithContext(ctx)
	// sqlite (used by the in-memory tests) has no FOR UPDATE
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out claimDomain.Claim
	res := q.Where("claim_number = ?", claimNumber).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) List(ctx context.Context, f claimDomain.ListFilter) ([]claimDomain.Claim, error) {
	q := r.db.WithContext(ctx).Model(&claimDomain.Claim{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var out []claimDomain.Claim
	res := q.Order("submitted_at DESC, id DESC").Limit(limit).Offset(offset).Find(&out)
	return out, res.Error
}
