// Package postgres implements the domain repository interfaces on GORM.
// One generic core carries the shared add/get/update/delete/list semantics;
// each entity repository configures it with its table metadata and mappers.
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/errors"
)

// relationJoin describes one joinable relationship: the SQL used to reach
// the related table and the columns callers may filter on once joined.
type relationJoin struct {
	table   string
	joinSQL string
	columns map[string]struct{}
}

// repoConfig carries everything entity-specific the generic core needs:
// the table name, the filterable column allow-list, the joinable
// relationships, the association names to preload on reads, and the
// entity/model mappers.
type repoConfig[E any, M any] struct {
	table     string
	columns   map[string]struct{}
	relations map[string]relationJoin
	preloads  []string
	toModel   func(*E) *M
	toEntity  func(*M) *E
	modelID   func(*M) int64

	// updateOmit lists columns a full-replace Update must never touch,
	// beyond the identity and creation timestamp.
	updateOmit []string
}

// gormRepository is the shared CRUD core. Entity repositories embed it and
// add their entity-specific queries on top.
type gormRepository[E any, M any] struct {
	db  *gorm.DB
	cfg repoConfig[E, M]
}

func newGormRepository[E any, M any](db *gorm.DB, cfg repoConfig[E, M]) *gormRepository[E, M] {
	return &gormRepository[E, M]{db: db, cfg: cfg}
}

// Add inserts a new record and re-reads it so the returned entity carries
// the generated identity and every database default.
func (r *gormRepository[E, M]) Add(ctx context.Context, ent *E) (*E, error) {
	m := r.cfg.toModel(ent)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, translateWriteError(err, "insert into "+r.cfg.table)
	}

	return r.Get(ctx, r.cfg.modelID(m))
}

// Get fetches one record by identity with its declared associations loaded.
// Absence is reported as (nil, nil), not as an error.
func (r *gormRepository[E, M]) Get(ctx context.Context, id int64) (*E, error) {
	m := new(M)

	query := r.db.WithContext(ctx)
	for _, preload := range r.cfg.preloads {
		query = query.Preload(preload)
	}

	if err := query.Where(r.cfg.table+".id = ?", id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewPersistenceError(err, "select from "+r.cfg.table)
	}

	return r.cfg.toEntity(m), nil
}

// Update replaces every column of the addressed record with the provided
// values, keeping only the identity and creation timestamp. A missing id
// yields ErrNotFound.
func (r *gormRepository[E, M]) Update(ctx context.Context, ent *E, id int64) (*E, error) {
	m := r.cfg.toModel(ent)

	omitted := append([]string{"id", "created_at", clause.Associations}, r.cfg.updateOmit...)

	result := r.db.WithContext(ctx).
		Model(new(M)).
		Where("id = ?", id).
		Select("*").
		Omit(omitted...).
		Updates(m)
	if result.Error != nil {
		return nil, translateWriteError(result.Error, "update "+r.cfg.table)
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound.WrapMessage(
			fmt.Sprintf("%s id %d", r.cfg.table, id))
	}

	return r.Get(ctx, id)
}

// Delete removes the addressed record. Deleting a missing id is a no-op.
func (r *gormRepository[E, M]) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return translateWriteError(result.Error, "delete from "+r.cfg.table)
	}

	return nil
}

// List returns matching records ordered by ascending identity. Filter keys
// are validated against the column allow-list before they reach SQL, and
// join names against the declared relationships; an unknown key yields
// ErrInvalidFilter rather than a query error.
func (r *gormRepository[E, M]) List(ctx context.Context, opts repository.ListOptions) ([]*E, error) {
	if err := validateFilter(r.cfg.table, r.cfg.columns, opts.Filter); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(new(M))

	for key, value := range opts.Filter {
		query = query.Where(fmt.Sprintf("%s.%s = ?", r.cfg.table, key), value)
	}

	for _, join := range opts.Joins {
		rel, ok := r.cfg.relations[join.Relation]
		if !ok {
			return nil, domainerrors.ErrInvalidFilter.WrapMessage(
				fmt.Sprintf("unknown relationship %q on %s", join.Relation, r.cfg.table))
		}

		if err := validateFilter(rel.table, rel.columns, join.Filter); err != nil {
			return nil, err
		}

		query = query.Joins(rel.joinSQL)
		for key, value := range join.Filter {
			query = query.Where(fmt.Sprintf("%s.%s = ?", rel.table, key), value)
		}
	}

	// A join against a to-many relationship can duplicate parent rows.
	if len(opts.Joins) > 0 {
		query = query.Distinct(r.cfg.table + ".*")
	}

	for _, preload := range r.cfg.preloads {
		query = query.Preload(preload)
	}

	query = query.Order(r.cfg.table + ".id ASC").Offset(opts.Skip)
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var models []*M
	if err := query.Find(&models).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "list "+r.cfg.table)
	}

	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.cfg.toEntity(m))
	}

	return entities, nil
}

// validateFilter rejects filter keys outside the table's column allow-list.
// Keys are interpolated into SQL afterwards, so nothing unvalidated may pass.
func validateFilter(table string, columns map[string]struct{}, filter map[string]any) error {
	for key := range filter {
		if _, ok := columns[key]; !ok {
			return domainerrors.ErrInvalidFilter.WrapMessage(
				fmt.Sprintf("unknown column %q on %s", key, table))
		}
	}

	return nil
}

// columnSet builds an allow-list from column names.
func columnSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}
