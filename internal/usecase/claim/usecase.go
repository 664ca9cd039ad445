package claim

import (
	"context"
	"errors"
	"strings"
	"time"

	"claims-backend/internal/domain/claim"
	"claims-backend/internal/domain/estimate"
	"claims-backend/internal/domain/photo"
	estimateuc "claims-backend/internal/usecase/estimate"
	photouc "claims-backend/internal/usecase/photo"
	"claims-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	claims    claim.Repository
	photos    photo.Repository
	estimates estimate.Repository
}

func NewUsecase(claims claim.Repository, photos photo.Repository, estimates estimate.Repository) *Usecase {
	return &Usecase{claims: claims, photos: photos, estimates: estimates}
}

type CreateClaimInput struct {
	PolicyholderName    string
	PolicyNumber        string
	VehicleMake         string
	VehicleModel        string
	VehicleYear         int
	LicensePlate        string
	IncidentDate        time.Time
	IncidentLocation    string
	IncidentDescription string
	Priority            string
}

type UpdateClaimInput struct {
	Status        *string
	Priority      *string
	AdjusterNotes *string
}

type ClaimDTO struct {
	ClaimNumber         string    `json:"claim_number"`
	PolicyholderName    string    `json:"policyholder_name"`
	PolicyNumber        string    `json:"policy_number"`
	VehicleMake         string    `json:"vehicle_make"`
	VehicleModel        string    `json:"vehicle_model"`
	VehicleYear         int       `json:"vehicle_year"`
	LicensePlate        string    `json:"license_plate,omitempty"`
	IncidentDate        string    `json:"incident_date"`
	IncidentLocation    string    `json:"incident_location,omitempty"`
	IncidentDescription string    `json:"incident_description"`
	Status              string    `json:"status"`
	Priority            string    `json:"priority"`
	SubmittedAt         time.Time `json:"submitted_at"`
	AdjusterNotes       string    `json:"adjuster_notes,omitempty"`
	EstimatedTotal      *float64  `json:"estimated_total,omitempty"`
	EstimateConfidence  *float64  `json:"estimate_confidence,omitempty"`
}

type ClaimDetailDTO struct {
	ClaimDTO
	Photos        []photouc.PhotoDTO       `json:"photos"`
	CostBreakdown *estimateuc.BreakdownDTO `json:"cost_breakdown,omitempty"`
}

func ToDTO(c *claim.Claim) ClaimDTO {
	return ClaimDTO{
		ClaimNumber:         c.ClaimNumber,
		PolicyholderName:    c.PolicyholderName,
		PolicyNumber:        c.PolicyNumber,
		VehicleMake:         c.VehicleMake,
		VehicleModel:        c.VehicleModel,
		VehicleYear:         c.VehicleYear,
		LicensePlate:        c.LicensePlate,
		IncidentDate:        c.IncidentDate.Format("2006-01-02"),
		IncidentLocation:    c.IncidentLocation,
		IncidentDescription: c.IncidentDescription,
		Status:              string(c.Status),
		Priority:            string(c.Priority),
		SubmittedAt:         c.SubmittedAt,
		AdjusterNotes:       c.AdjusterNotes,
		EstimatedTotal:      c.EstimatedTotal,
		EstimateConfidence:  c.EstimateConfidence,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateClaimInput) (*ClaimDTO, error) {
	// the required tag lets whitespace-only values through; catch them here
	if strings.TrimSpace(in.PolicyholderName) == "" ||
		strings.TrimSpace(in.PolicyNumber) == "" ||
		strings.TrimSpace(in.IncidentDescription) == "" {
		return nil, claim.ErrInvalidInput
	}

	prio := claim.PriorityNormal
	if in.Priority != "" {
		prio = claim.Priority(in.Priority)
		if !claim.ValidPriority(prio) {
			return nil, claim.ErrInvalidPriority
		}
	}

	c := &claim.Claim{
		ClaimNumber:         id.NewClaimNumber(),
		PolicyholderName:    in.PolicyholderName,
		PolicyNumber:        in.PolicyNumber,
		VehicleMake:         in.VehicleMake,
		VehicleModel:        in.VehicleModel,
		VehicleYear:         in.VehicleYear,
		LicensePlate:        in.LicensePlate,
		IncidentDate:        in.IncidentDate,
		IncidentLocation:    in.IncidentLocation,
		IncidentDescription: in.IncidentDescription,
		Status:              claim.StatusSubmitted,
		Priority:            prio,
		SubmittedAt:         time.Now().UTC(),
	}

	if err := u.claims.Create(ctx, c); err != nil {
		// claim numbers are random; retry once on a number collision
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.ClaimNumber = id.NewClaimNumber()
			if err2 := u.claims.Create(ctx, c); err2 != nil {
				return nil, err2
			}
		} else {
			return nil, err
		}
	}

	dto := ToDTO(c)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, claimNumber string) (*ClaimDetailDTO, error) {
	c, err := u.claims.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}

	out := &ClaimDetailDTO{ClaimDTO: ToDTO(c), Photos: []photouc.PhotoDTO{}}

	photos, err := u.photos.ListByClaimID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		out.Photos = append(out.Photos, photouc.ToDTO(&photos[i], c.ClaimNumber))
	}

	b, err := u.estimates.GetByClaimID(ctx, c.ID)
	switch {
	case err == nil:
		dto := estimateuc.ToDTO(b, c.ClaimNumber)
		out.CostBreakdown = &dto
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return out, nil
}

func (u *Usecase) List(ctx context.Context, f claim.ListFilter) ([]ClaimDTO, error) {
	if f.Status != "" && !claim.ValidStatus(f.Status) {
		return nil, claim.ErrInvalidStatus
	}
	if f.Priority != "" && !claim.ValidPriority(f.Priority) {
		return nil, claim.ErrInvalidPriority
	}
	claims, err := u.claims.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ClaimDTO, 0, len(claims))
	for i := range claims {
		out = append(out, ToDTO(&claims[i]))
	}
	return out, nil
}

// Update applies a partial adjuster update; only non-nil fields are touched.
func (u *Usecase) Update(ctx context.Context, claimNumber string, in UpdateClaimInput) (*ClaimDTO, error) {
	c, err := u.claims.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}

	if in.Status != nil {
		s := claim.Status(*in.Status)
		if !claim.ValidStatus(s) {
			return nil, claim.ErrInvalidStatus
		}
		c.Status = s
	}
	if in.Priority != nil {
		p := claim.Priority(*in.Priority)
		if !claim.ValidPriority(p) {
			return nil, claim.ErrInvalidPriority
		}
		c.Priority = p
	}
	if in.AdjusterNotes != nil {
		c.AdjusterNotes = *in.AdjusterNotes
	}

	if err := u.claims.Save(ctx, c); err != nil {
		return nil, err
	}
	dto := ToDTO(c)
	return &dto, nil
}
