// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "autolot/internal/domain/repository"

// ListInput carries pagination, filtering and join constraints for list
// operations. It maps one-to-one onto repository.ListOptions; keeping the
// type here lets the delivery layer depend on usecase alone.
type ListInput struct {
	Skip   int
	Limit  int
	Filter map[string]any
	Joins  []repository.JoinSpec
}

// ToOptions converts the input to repository options, substituting the
// configured default when no limit was given.
func (in ListInput) ToOptions(defaultLimit int) repository.ListOptions {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return repository.ListOptions{
		Skip:   in.Skip,
		Limit:  limit,
		Filter: in.Filter,
		Joins:  in.Joins,
	}
}
