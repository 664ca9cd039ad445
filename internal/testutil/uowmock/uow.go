package uowmock

import (
	"context"
	"errors"

	"claims-backend/internal/domain/claim"
	"claims-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinClaimTxFn func(ctx context.Context, claimNumber string, fn func(r uow.Repos, c *claim.Claim) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinClaimTx(ctx context.Context, claimNumber string, fn func(r uow.Repos, c *claim.Claim) error) error {
	if m.WithinClaimTxFn != nil {
		return m.WithinClaimTxFn(ctx, claimNumber, fn)
	}
	return errUnimplemented
}

// Passthrough builds a WithinClaimTxFn that runs fn against the given repos and
// claim without any real transaction. Handy default for usecase tests.
func Passthrough(r uow.Repos, c *claim.Claim) func(context.Context, string, func(uow.Repos, *claim.Claim) error) error {
	return func(ctx context.Context, claimNumber string, fn func(uow.Repos, *claim.Claim) error) error {
		return fn(r, c)
	}
}
