package claim

import "context"

// ListFilter narrows List results; zero values mean "no filter".
type ListFilter struct {
	Status   Status
	Priority Priority
	Limit    int
	Offset   int
}

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint64) (*Claim, error)
	GetByClaimNumber(ctx context.Context, claimNumber string) (*Claim, error)
	GetByClaimNumberForUpdate(ctx context.Context, claimNumber string) (*Claim, error)
	List(ctx context.Context, f ListFilter) ([]Claim, error)
	Save(ctx context.Context, c *Claim) error
}
