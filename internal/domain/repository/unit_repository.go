package repository

import (
	"context"
	"time"

	"autolot/internal/domain/entity"
)

// UnitRepository defines the standard operations for unit persistence plus
// the bulk update the expiration sweep needs.
type UnitRepository interface {
	Repository[entity.Unit]

	// ExpireOverdue marks every unit whose expire_date has passed, is not yet
	// expired and is not purchased, and returns the number of rows updated.
	// The flag is monotonic: rows already expired are never touched again.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}
