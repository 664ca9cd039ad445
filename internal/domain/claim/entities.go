package claim

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("claim not found")
	ErrInvalidStatus   = errors.New("invalid claim status")
	ErrInvalidPriority = errors.New("invalid claim priority")
	ErrInvalidInput    = errors.New("required fields must not be blank")
)

type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusClosed      Status = "closed"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Table: claims
type Claim struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier, e.g. CLM-9F2A4C01, assigned at creation
	ClaimNumber string `gorm:"column:claim_number;type:char(12);not null;uniqueIndex:ux_claims_claim_number" json:"claim_number"`

	PolicyholderName string `gorm:"column:policyholder_name;size:128;not null" json:"policyholder_name"`
	PolicyNumber     string `gorm:"column:policy_number;size:64;not null;index:idx_claims_policy_number" json:"policy_number"`

	VehicleMake  string `gorm:"column:vehicle_make;size:64;not null" json:"vehicle_make"`
	VehicleModel string `gorm:"column:vehicle_model;size:64;not null" json:"vehicle_model"`
	VehicleYear  int    `gorm:"column:vehicle_year;not null" json:"vehicle_year"`
	LicensePlate string `gorm:"column:license_plate;size:32" json:"license_plate"`

	IncidentDate        time.Time `gorm:"column:incident_date;type:date;not null" json:"incident_date"`
	IncidentLocation    string    `gorm:"column:incident_location;size:255" json:"incident_location"`
	IncidentDescription string    `gorm:"column:incident_description;type:text;not null" json:"incident_description"`

	Status   Status   `gorm:"column:status;type:enum('submitted','under_review','approved','rejected','closed');default:'submitted';index:idx_claims_status" json:"status"`
	Priority Priority `gorm:"column:priority;type:enum('low','normal','high','urgent');default:'normal'" json:"priority"`

	SubmittedAt   time.Time `gorm:"column:submitted_at;not null" json:"submitted_at"`
	AdjusterNotes string    `gorm:"column:adjuster_notes;type:text" json:"adjuster_notes"`

	// Filled in once photo analysis has produced a cost breakdown.
	EstimatedTotal     *float64 `gorm:"column:estimated_total;type:decimal(12,2)" json:"estimated_total"`
	EstimateConfidence *float64 `gorm:"column:estimate_confidence;type:decimal(4,3)" json:"estimate_confidence"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Claim) TableName() string { return "claims" }
