// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import "context"

// JoinSpec requires the existence of a related record on a named
// relationship, optionally constrained by an equality filter over the
// joined table's columns.
type JoinSpec struct {
	// Relation is the relationship name, e.g. "vehicle" on a unit listing.
	Relation string

	// Filter is a conjunction of column = value conditions applied to the
	// joined table. An unknown column yields ErrInvalidFilter.
	Filter map[string]any
}

// ListOptions controls pagination and filter composition for List.
// Filter entries are combined as a conjunction (AND); there is no implicit
// OR and no partial matching. Join predicates are additive and applied only
// when a JoinSpec is present, never inferred from Filter.
type ListOptions struct {
	Skip  int
	Limit int

	// Filter maps column names on the listed entity to required equality
	// values. An unknown column yields ErrInvalidFilter.
	Filter map[string]any

	Joins []JoinSpec
}

// Repository is the capability set shared by every entity kind:
// add/get/update/delete/list, parameterized by the entity's shape.
//
// Get returns (nil, nil) when the id does not exist: absence is an explicit
// miss, not a fault. Update fails with ErrNotFound for a missing id.
// Delete is idempotent; deleting a missing id is not an error.
type Repository[E any] interface {
	// Add inserts a new record and returns the persisted entity including
	// its assigned identity and database defaults.
	Add(ctx context.Context, ent *E) (*E, error)

	// Get fetches exactly one record by identity, or (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*E, error)

	// Update replaces the addressed record's fields with the provided values
	// and returns the refreshed entity.
	Update(ctx context.Context, ent *E, id int64) (*E, error)

	// Delete removes the addressed record if it exists.
	Delete(ctx context.Context, id int64) error

	// List returns up to Limit records after skipping Skip, ordered by
	// ascending identity.
	List(ctx context.Context, opts ListOptions) ([]*E, error)
}
