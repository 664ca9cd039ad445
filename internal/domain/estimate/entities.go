package estimate

import (
	"errors"
	"math"
	"time"
)

var ErrNotFound = errors.New("cost breakdown not found")

// Table: cost_breakdowns
//
// A claim has at most one breakdown in practice; the rule is enforced by the
// upsert access pattern, not a unique index.
type CostBreakdown struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// FK to claims.id (numeric)
	ClaimID uint64 `gorm:"column:claim_id;not null;index:idx_cost_breakdowns_claim" json:"-"`

	Bodywork float64 `gorm:"column:bodywork;type:decimal(12,2);not null" json:"bodywork"`
	Paint    float64 `gorm:"column:paint;type:decimal(12,2);not null" json:"paint"`
	Parts    float64 `gorm:"column:parts;type:decimal(12,2);not null" json:"parts"`
	Labor    float64 `gorm:"column:labor;type:decimal(12,2);not null" json:"labor"`
	Total    float64 `gorm:"column:total;type:decimal(12,2);not null" json:"total"`

	Confidence float64 `gorm:"column:confidence;type:decimal(4,3);not null" json:"confidence"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CostBreakdown) TableName() string { return "cost_breakdowns" }

// Sum recomputes the category total, rounded to cents like the columns.
func (b *CostBreakdown) Sum() float64 {
	return math.Round((b.Bodywork+b.Paint+b.Parts+b.Labor)*100) / 100
}
