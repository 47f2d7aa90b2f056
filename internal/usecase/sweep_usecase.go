package usecase

import "context"

// SweepUsecase drives the expiration sweep over listed units.
type SweepUsecase interface {
	// RunPass marks every overdue, unpurchased unit expired in one
	// transaction and reports whether any row changed. Safe to run
	// concurrently with writes; the flag only ever moves to true.
	RunPass(ctx context.Context) (bool, error)
}
