package photo

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("photo not found")

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Table: damage_photos
type DamagePhoto struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// FK to claims.id (numeric)
	ClaimID uint64 `gorm:"column:claim_id;not null;index:idx_damage_photos_claim" json:"-"`

	FileName   string `gorm:"column:file_name;size:255;not null" json:"file_name"`
	StoredName string `gorm:"column:stored_name;size:64;not null;uniqueIndex:ux_damage_photos_stored_name" json:"stored_name"`
	MimeType   string `gorm:"column:mime_type;size:64;not null" json:"mime_type"`
	SizeBytes  int64  `gorm:"column:size_bytes;not null" json:"size_bytes"`
	Width      int    `gorm:"column:width" json:"width"`
	Height     int    `gorm:"column:height" json:"height"`

	// Mocked analysis result
	Severity   Severity `gorm:"column:severity;type:enum('minor','moderate','severe')" json:"severity"`
	DamageType string   `gorm:"column:damage_type;size:64" json:"damage_type"`
	Confidence float64  `gorm:"column:confidence;type:decimal(4,3)" json:"confidence"`
	// JSON-encoded []string, e.g. ["panel_replacement","repaint"]
	RepairTypes string `gorm:"column:repair_types;type:text" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DamagePhoto) TableName() string { return "damage_photos" }
