package mysql

import (
	"context"

	photoDomain "claims-backend/internal/domain/photo"

	"gorm.io/gorm"
)

type PhotoRepository struct{ db *gorm.DB }

func NewPhotoRepository(db *gorm.DB) *PhotoRepository { return &PhotoRepository{db: db} }

func (r *PhotoRepository) Create(ctx context.Context, p *photoDomain.DamagePhoto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uint64) (*photoDomain.DamagePhoto, error) {
	var out photoDomain.DamagePhoto
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PhotoRepository) ListByClaimID(ctx context.Context, claimID uint64) ([]photoDomain.DamagePhoto, error) {
	var out []photoDomain.DamagePhoto
	res := r.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PhotoRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&photoDomain.DamagePhoto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
