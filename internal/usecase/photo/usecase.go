package photo

import (
	"context"
	"errors"
	"log"
	"time"

	"claims-backend/internal/analysis"
	"claims-backend/internal/domain/claim"
	"claims-backend/internal/domain/estimate"
	"claims-backend/internal/domain/photo"
	"claims-backend/internal/domain/uow"
	"claims-backend/internal/imaging"
	"claims-backend/internal/infrastructure/filestore"

	"gorm.io/gorm"
)

// ErrBadImage marks uploads that cannot be decoded as an image.
var ErrBadImage = errors.New("unsupported or corrupt image")

// FileStore is the slice of the disk store the upload flow needs.
type FileStore interface {
	Save(data []byte, ext string) (string, error)
	Remove(name string) error
}

type Usecase struct {
	claims   claim.Repository
	photos   photo.Repository
	uow      uow.UnitOfWork
	store    FileStore
	analyzer *analysis.Analyzer
	maxDim   int
}

func NewUsecase(claims claim.Repository, photos photo.Repository, tx uow.UnitOfWork, store FileStore, analyzer *analysis.Analyzer, maxDim int) *Usecase {
	return &Usecase{claims: claims, photos: photos, uow: tx, store: store, analyzer: analyzer, maxDim: maxDim}
}

type UploadInput struct {
	FileName string
	MimeType string
	Data     []byte
}

type PhotoDTO struct {
	ID          uint64    `json:"id"`
	ClaimNumber string    `json:"claim_number"`
	FileName    string    `json:"file_name"`
	StoredName  string    `json:"stored_name"`
	URL         string    `json:"url"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Severity    string    `json:"severity"`
	DamageType  string    `json:"damage_type"`
	Confidence  float64   `json:"confidence"`
	RepairTypes []string  `json:"repair_types"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToDTO(p *photo.DamagePhoto, claimNumber string) PhotoDTO {
	rts := p.RepairTypeList()
	if rts == nil {
		rts = []string{}
	}
	return PhotoDTO{
		ID:          p.ID,
		ClaimNumber: claimNumber,
		FileName:    p.FileName,
		StoredName:  p.StoredName,
		URL:         "/uploads/" + p.StoredName,
		MimeType:    p.MimeType,
		SizeBytes:   p.SizeBytes,
		Width:       p.Width,
		Height:      p.Height,
		Severity:    string(p.Severity),
		DamageType:  p.DamageType,
		Confidence:  p.Confidence,
		RepairTypes: rts,
		CreatedAt:   p.CreatedAt,
	}
}

// Upload resizes and stores the image, runs the mocked analysis, then persists
// the photo, the claim's cost breakdown and the claim's estimate pair in one
// transaction.
func (u *Usecase) Upload(ctx context.Context, claimNumber string, in UploadInput) (*PhotoDTO, error) {
	processed, err := imaging.Process(in.Data, u.maxDim)
	if err != nil {
		return nil, ErrBadImage
	}

	res := u.analyzer.AnalyzePhoto()
	costs := u.analyzer.EstimateCosts(res.Severity)

	storedName, err := u.store.Save(processed.Data, filestore.ExtForMime(processed.MimeType))
	if err != nil {
		return nil, err
	}

	p := &photo.DamagePhoto{
		FileName:   in.FileName,
		StoredName: storedName,
		MimeType:   processed.MimeType,
		SizeBytes:  int64(len(processed.Data)),
		Width:      processed.Width,
		Height:     processed.Height,
		Severity:   photo.Severity(res.Severity),
		DamageType: res.DamageType,
		Confidence: res.Confidence,
	}
	p.SetRepairTypes(res.RepairTypes)

	var dto PhotoDTO
	err = u.uow.WithinClaimTx(ctx, claimNumber, func(r uow.Repos, c *claim.Claim) error {
		p.ClaimID = c.ID
		if err := r.Photos.Create(ctx, p); err != nil {
			return err
		}
		if err := upsertBreakdown(ctx, r.Estimates, c.ID, costs); err != nil {
			return err
		}
		c.EstimatedTotal = &costs.Total
		c.EstimateConfidence = &costs.Confidence
		return r.Claims.Save(ctx, c)
	})
	if err != nil {
		// claim row never touched; don't leave the file orphaned
		if rmErr := u.store.Remove(storedName); rmErr != nil {
			log.Printf("photo upload: cleanup %s: %v", storedName, rmErr)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}

	dto = ToDTO(p, claimNumber)
	return &dto, nil
}

func upsertBreakdown(ctx context.Context, repo estimate.Repository, claimID uint64, costs analysis.CostEstimate) error {
	b, err := repo.GetByClaimID(ctx, claimID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		b = &estimate.CostBreakdown{ClaimID: claimID}
	case err != nil:
		return err
	}
	b.Bodywork = costs.Bodywork
	b.Paint = costs.Paint
	b.Parts = costs.Parts
	b.Labor = costs.Labor
	b.Total = costs.Total
	b.Confidence = costs.Confidence
	if b.ID == 0 {
		return repo.Create(ctx, b)
	}
	return repo.Save(ctx, b)
}

func (u *Usecase) Get(ctx context.Context, photoID uint64) (*PhotoDTO, error) {
	p, err := u.photos.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, photo.ErrNotFound
		}
		return nil, err
	}
	cn, err := u.claimNumberFor(ctx, p.ClaimID)
	if err != nil {
		return nil, err
	}
	dto := ToDTO(p, cn)
	return &dto, nil
}

func (u *Usecase) ListByClaim(ctx context.Context, claimNumber string) ([]PhotoDTO, error) {
	c, err := u.claims.GetByClaimNumber(ctx, claimNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, err
	}
	photos, err := u.photos.ListByClaimID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out := make([]PhotoDTO, 0, len(photos))
	for i := range photos {
		out = append(out, ToDTO(&photos[i], c.ClaimNumber))
	}
	return out, nil
}

// Delete removes the DB row first, then the disk file (best effort).
func (u *Usecase) Delete(ctx context.Context, photoID uint64) error {
	p, err := u.photos.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return photo.ErrNotFound
		}
		return err
	}
	if err := u.photos.Delete(ctx, photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return photo.ErrNotFound
		}
		return err
	}
	if err := u.store.Remove(p.StoredName); err != nil {
		log.Printf("photo delete: remove %s: %v", p.StoredName, err)
	}
	return nil
}

// photos carry the numeric FK only; resolve the public claim number
func (u *Usecase) claimNumberFor(ctx context.Context, claimID uint64) (string, error) {
	c, err := u.claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", claim.ErrNotFound
		}
		return "", err
	}
	return c.ClaimNumber, nil
}
