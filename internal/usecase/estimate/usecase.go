package estimate

import (
	"context"
	"errors"
	"time"

	"claims-backend/internal/domain/claim"
	"claims-backend/internal/domain/estimate"
	"claims-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	claims    claim.Repository
	estimates estimate.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(claims claim.Repository, estimates estimate.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{claims: claims, estimates: estimates, uow: tx}
}

type PutBreakdownInput struct {
	Bodywork   float64
	Paint      float64
	Parts      float64
	Labor      float64
	Confidence float64
}

type UpdateBreakdownInput struct {
	Bodywork   *float64
	Paint      *float64
	Parts      *float64
	Labor      *float64
	Confidence *float64
}

type BreakdownDTO struct {
	ClaimNumber string    `json:"claim_number"`
	Bodywork    float64   `json:"bodywork"`
	Paint       float64   `json:"paint"`
	Parts       float64   `json:"parts"`
	Labor       float64   `json:"labor"`
	Total       float64   `json:"total"`
	Confidence  float64   `json:"confidence"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToDTO(b *estimate.CostBreakdown, claimNumber string) BreakdownDTO {
	return BreakdownDTO{
		ClaimNumber: claimNumber,
		Bodywork:    b.Bodywork,
		Paint:       b.Paint,
		Parts:       b.Parts,
		Labor:       b.Labor,
		Total:       b.Total,
		Confidence:  b.Confidence,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (u *Usecase) Get(ctx context.Context, claimNumber string) (*BreakdownDTO, error) {
	c, err := u.claims.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	b, err := u.estimates.GetByClaimID(ctx, c.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, estimate.ErrNotFound
		}
		return nil, err
	}
	dto := ToDTO(b, c.ClaimNumber)
	return &dto, nil
}

// Put creates or replaces the claim's breakdown (adjuster override) and mirrors
// the result onto the claim's estimate pair. Total is always the category sum.
func (u *Usecase) Put(ctx context.Context, claimNumber string, in PutBreakdownInput) (*BreakdownDTO, error) {
	var dto BreakdownDTO
	err := u.uow.WithinClaimTx(ctx, claimNumber, func(r uow.Repos, c *claim.Claim) error {
		b, err := r.Estimates.GetByClaimID(ctx, c.ID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			b = &estimate.CostBreakdown{ClaimID: c.ID}
		case err != nil:
			return err
		}

		b.Bodywork = in.Bodywork
		b.Paint = in.Paint
		b.Parts = in.Parts
		b.Labor = in.Labor
		b.Confidence = in.Confidence
		b.Total = b.Sum()

		if b.ID == 0 {
			if err := r.Estimates.Create(ctx, b); err != nil {
				return err
			}
		} else if err := r.Estimates.Save(ctx, b); err != nil {
			return err
		}

		c.EstimatedTotal = &b.Total
		c.EstimateConfidence = &b.Confidence
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}

		dto = ToDTO(b, c.ClaimNumber)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	return &dto, nil
}

// Update applies a partial category update and recomputes the total.
func (u *Usecase) Update(ctx context.Context, claimNumber string, in UpdateBreakdownInput) (*BreakdownDTO, error) {
	var dto BreakdownDTO
	err := u.uow.WithinClaimTx(ctx, claimNumber, func(r uow.Repos, c *claim.Claim) error {
		b, err := r.Estimates.GetByClaimID(ctx, c.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return estimate.ErrNotFound
			}
			return err
		}

		if in.Bodywork != nil {
			b.Bodywork = *in.Bodywork
		}
		if in.Paint != nil {
			b.Paint = *in.Paint
		}
		if in.Parts != nil {
			b.Parts = *in.Parts
		}
		if in.Labor != nil {
			b.Labor = *in.Labor
		}
		if in.Confidence != nil {
			b.Confidence = *in.Confidence
		}
		b.Total = b.Sum()

		if err := r.Estimates.Save(ctx, b); err != nil {
			return err
		}

		c.EstimatedTotal = &b.Total
		c.EstimateConfidence = &b.Confidence
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}

		dto = ToDTO(b, c.ClaimNumber)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	return &dto, nil
}
