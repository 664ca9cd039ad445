package claim

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	domain "claims-backend/internal/domain/claim"
	estimateDomain "claims-backend/internal/domain/estimate"
	photoDomain "claims-backend/internal/domain/photo"
	"claims-backend/internal/testutil/claimmock"
	"claims-backend/internal/testutil/estimatemock"
	"claims-backend/internal/testutil/photomock"

	"gorm.io/gorm"
)

var reClaimNumber = regexp.MustCompile(`^CLM-[A-F0-9]{8}$`)

func validInput() CreateClaimInput {
	return CreateClaimInput{
		PolicyholderName:    "Jamie Doe",
		PolicyNumber:        "POL-12345",
		VehicleMake:         "Toyota",
		VehicleModel:        "Corolla",
		VehicleYear:         2019,
		LicensePlate:        "B-1234-XYZ",
		IncidentDate:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		IncidentLocation:    "Main St / 5th Ave",
		IncidentDescription: "rear-ended at a stop light",
	}
}

func notFoundEstimates() *estimatemock.Repo {
	return &estimatemock.Repo{
		GetByClaimIDFn: func(ctx context.Context, claimID uint64) (*estimateDomain.CostBreakdown, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestCreate_AssignsNumberAndDefaults(t *testing.T) {
	var created *domain.Claim
	repo := &claimmock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Claim) error {
			created = c
			return nil
		},
	}
	uc := NewUsecase(repo, &photomock.Repo{}, notFoundEstimates())

	dto, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if !reClaimNumber.MatchString(dto.ClaimNumber) {
		t.Fatalf("claim number %q has wrong format", dto.ClaimNumber)
	}
	if dto.Status != string(domain.StatusSubmitted) {
		t.Fatalf("status = %q, want submitted", dto.Status)
	}
	if dto.Priority != string(domain.PriorityNormal) {
		t.Fatalf("priority = %q, want normal", dto.Priority)
	}
	if created == nil || created.SubmittedAt.IsZero() || created.SubmittedAt.Location() != time.UTC {
		t.Fatalf("submitted_at not set in UTC: %+v", created)
	}
	if dto.EstimatedTotal != nil {
		t.Fatalf("new claim must not carry an estimate")
	}
}

func TestCreate_RespectsGivenPriority(t *testing.T) {
	uc := NewUsecase(&claimmock.Repo{}, &photomock.Repo{}, notFoundEstimates())

	in := validInput()
	in.Priority = "urgent"
	dto, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if dto.Priority != "urgent" {
		t.Fatalf("priority = %q, want urgent", dto.Priority)
	}
}

func TestCreate_RejectsBlankRequiredFields(t *testing.T) {
	uc := NewUsecase(&claimmock.Repo{}, &photomock.Repo{}, notFoundEstimates())

	in := validInput()
	in.IncidentDescription = "   "
	if _, err := uc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreate_RejectsUnknownPriority(t *testing.T) {
	uc := NewUsecase(&claimmock.Repo{}, &photomock.Repo{}, notFoundEstimates())

	in := validInput()
	in.Priority = "asap"
	if _, err := uc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidPriority) {
		t.Fatalf("err = %v, want ErrInvalidPriority", err)
	}
}

func TestCreate_RetriesOnceOnNumberCollision(t *testing.T) {
	var numbers []string
	repo := &claimmock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Claim) error {
			numbers = append(numbers, c.ClaimNumber)
			if len(numbers) == 1 {
				return gorm.ErrDuplicatedKey
			}
			return nil
		},
	}
	uc := NewUsecase(repo, &photomock.Repo{}, notFoundEstimates())

	dto, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(numbers) != 2 {
		t.Fatalf("Create called %d times, want 2", len(numbers))
	}
	if numbers[0] == numbers[1] {
		t.Fatalf("retry reused the colliding number %q", numbers[0])
	}
	if dto.ClaimNumber != numbers[1] {
		t.Fatalf("dto number %q, want %q", dto.ClaimNumber, numbers[1])
	}
}

func TestGet_IncludesPhotosAndBreakdown(t *testing.T) {
	stored := &domain.Claim{
		ID:          9,
		ClaimNumber: "CLM-AAAA0001",
		Status:      domain.StatusUnderReview,
		Priority:    domain.PriorityNormal,
	}
	claims := &claimmock.Repo{
		GetByClaimNumberFn: func(ctx context.Context, cn string) (*domain.Claim, error) {
			if cn != "CLM-AAAA0001" {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
	}
	photos := &photomock.Repo{
		ListByClaimIDFn: func(ctx context.Context, claimID uint64) ([]photoDomain.DamagePhoto, error) {
			if claimID != 9 {
				t.Fatalf("listed wrong claim id %d", claimID)
			}
			p := photoDomain.DamagePhoto{ID: 3, ClaimID: 9, StoredName: "x.jpg", Severity: photoDomain.SeverityMinor}
			p.SetRepairTypes([]string{"touch_up_paint"})
			return []photoDomain.DamagePhoto{p}, nil
		},
	}
	estimates := &estimatemock.Repo{
		GetByClaimIDFn: func(ctx context.Context, claimID uint64) (*estimateDomain.CostBreakdown, error) {
			return &estimateDomain.CostBreakdown{ClaimID: 9, Bodywork: 100, Paint: 50, Parts: 25, Labor: 25, Total: 200, Confidence: 0.8}, nil
		},
	}
	uc := NewUsecase(claims, photos, estimates)

	dto, err := uc.Get(context.Background(), "CLM-AAAA0001")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if len(dto.Photos) != 1 || dto.Photos[0].URL != "/uploads/x.jpg" {
		t.Fatalf("photos: %+v", dto.Photos)
	}
	if dto.CostBreakdown == nil || dto.CostBreakdown.Total != 200 {
		t.Fatalf("breakdown: %+v", dto.CostBreakdown)
	}
}

func TestGet_NoBreakdownYet(t *testing.T) {
	claims := &claimmock.Repo{
		GetByClaimNumberFn: func(ctx context.Context, cn string) (*domain.Claim, error) {
			return &domain.Claim{ID: 1, ClaimNumber: cn}, nil
		},
	}
	photos := &photomock.Repo{
		ListByClaimIDFn: func(ctx context.Context, claimID uint64) ([]photoDomain.DamagePhoto, error) {
			return nil, nil
		},
	}
	uc := NewUsecase(claims, photos, notFoundEstimates())

	dto, err := uc.Get(context.Background(), "CLM-AAAA0002")
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.CostBreakdown != nil {
		t.Fatalf("expected nil breakdown, got %+v", dto.CostBreakdown)
	}
	if dto.Photos == nil || len(dto.Photos) != 0 {
		t.Fatalf("photos must be an empty slice, got %#v", dto.Photos)
	}
}

func TestGet_NotFound(t *testing.T) {
	claims := &claimmock.Repo{
		GetByClaimNumberFn: func(ctx context.Context, cn string) (*domain.Claim, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(claims, &photomock.Repo{}, notFoundEstimates())

	if _, err := uc.Get(context.Background(), "CLM-00000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	uc := NewUsecase(&claimmock.Repo{}, &photomock.Repo{}, notFoundEstimates())

	_, err := uc.List(context.Background(), domain.ListFilter{Status: "archived"})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	stored := &domain.Claim{
		ID:            4,
		ClaimNumber:   "CLM-AAAA0004",
		Status:        domain.StatusSubmitted,
		Priority:      domain.PriorityHigh,
		AdjusterNotes: "initial",
	}
	var saved *domain.Claim
	claims := &claimmock.Repo{
		GetByClaimNumberFn: func(ctx context.Context, cn string) (*domain.Claim, error) {
			return stored, nil
		},
		SaveFn: func(ctx context.Context, c *domain.Claim) error {
			saved = c
			return nil
		},
	}
	uc := NewUsecase(claims, &photomock.Repo{}, notFoundEstimates())

	status := "under_review"
	dto, err := uc.Update(context.Background(), "CLM-AAAA0004", UpdateClaimInput{Status: &status})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if dto.Status != "under_review" {
		t.Fatalf("status = %q", dto.Status)
	}
	// untouched fields survive
	if saved.Priority != domain.PriorityHigh || saved.AdjusterNotes != "initial" {
		t.Fatalf("partial update clobbered fields: %+v", saved)
	}
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	claims := &claimmock.Repo{
		GetByClaimNumberFn: func(ctx context.Context, cn string) (*domain.Claim, error) {
			return &domain.Claim{ClaimNumber: cn}, nil
		},
	}
	uc := NewUsecase(claims, &photomock.Repo{}, notFoundEstimates())

	bad := "archived"
	if _, err := uc.Update(context.Background(), "CLM-AAAA0005", UpdateClaimInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	claims := &claimmock.Repo{
		GetByClaimNumberFn: func(ctx context.Context, cn string) (*domain.Claim, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(claims, &photomock.Repo{}, notFoundEstimates())

	notes := "n/a"
	if _, err := uc.Update(context.Background(), "CLM-00000000", UpdateClaimInput{AdjusterNotes: &notes}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
