// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/jackc/pgerrcode"
)

// categoryRepository is the PostgreSQL implementation of [CategoryRepository].
// Names arrive already normalized; the unique constraint on name is the
// final arbiter of equality.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by db.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{db: db, logger: logger}
}

// GetOrCreateCategory implements [CategoryRepository].
func (r *categoryRepository) GetOrCreateCategory(ctx context.Context, name string) (models.Category, bool, error) {
	var category models.Category

	created, err := r.db.getOrCreate(ctx, "categoryRepository.GetOrCreateCategory",
		func() error {
			return r.db.QueryRowContext(ctx, insertCategory, name).Scan(&category.ID, &category.Name)
		},
		func() error {
			return r.db.QueryRowContext(ctx, selectCategoryByName, name).Scan(&category.ID, &category.Name)
		},
	)
	if err != nil {
		return models.Category{}, false, err
	}

	return category, created, nil
}

// ListCategories returns all categories ordered by name.
func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "categoryRepository.ListCategories").Msg("failed to list categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

// GetCategory returns the category with id or [ErrEntityNotFound].
func (r *categoryRepository) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, getCategory, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return models.Category{}, entityLookupError(ctx, "categoryRepository.GetCategory", err)
	}
	return c, nil
}

// UpdateCategory renames the category. A rename onto an existing name
// returns [ErrEntityAlreadyExists].
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, updateCategory, category.Name, category.ID).Scan(&c.ID, &c.Name)
	if err != nil {
		return models.Category{}, entityLookupError(ctx, "categoryRepository.UpdateCategory", err)
	}
	return c, nil
}

// DeleteCategory removes the category; its movie links cascade.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.deleteEntity(ctx, "categoryRepository.DeleteCategory", deleteCategory, id)
}

// personRepository is the PostgreSQL implementation of [PersonRepository]
// for one of the people tables.
type personRepository struct {
	logger  *logger.Logger
	db      *DB
	kind    models.EntityKind
	queries personQueries
}

// NewPersonRepository constructs a [PersonRepository] over the table of kind,
// which must be [models.EntityActor] or [models.EntityDirector].
func NewPersonRepository(db *DB, kind models.EntityKind, logger *logger.Logger) PersonRepository {
	logger.Debug().Str("kind", string(kind)).Msg("creating person repository")
	return &personRepository{
		db:      db,
		logger:  logger,
		kind:    kind,
		queries: newPersonQueries(kind),
	}
}

// GetOrCreatePerson implements [PersonRepository].
func (r *personRepository) GetOrCreatePerson(ctx context.Context, person models.Person) (models.Person, bool, error) {
	var stored models.Person

	created, err := r.db.getOrCreate(ctx, "personRepository.GetOrCreatePerson",
		func() error {
			return r.db.QueryRowContext(ctx, r.queries.insert, person.Name, person.Surname).
				Scan(&stored.ID, &stored.Name, &stored.Surname)
		},
		func() error {
			return r.db.QueryRowContext(ctx, r.queries.selectByName, person.Name, person.Surname).
				Scan(&stored.ID, &stored.Name, &stored.Surname)
		},
	)
	if err != nil {
		return models.Person{}, false, err
	}

	return stored, created, nil
}

// ListPeople returns every person of the table ordered by name and surname.
func (r *personRepository) ListPeople(ctx context.Context) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.queries.list)
	if err != nil {
		log.Err(err).Str("func", "personRepository.ListPeople").Str("kind", string(r.kind)).Msg("failed to list people")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	people := make([]models.Person, 0, 32)
	for rows.Next() {
		var p models.Person
		if err = rows.Scan(&p.ID, &p.Name, &p.Surname); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		people = append(people, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return people, nil
}

// GetPerson returns the person with id or [ErrEntityNotFound].
func (r *personRepository) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	var p models.Person
	err := r.db.QueryRowContext(ctx, r.queries.get, id).Scan(&p.ID, &p.Name, &p.Surname)
	if err != nil {
		return models.Person{}, entityLookupError(ctx, "personRepository.GetPerson", err)
	}
	return p, nil
}

// UpdatePerson renames the person. A rename onto an existing (name, surname)
// returns [ErrEntityAlreadyExists].
func (r *personRepository) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	var p models.Person
	err := r.db.QueryRowContext(ctx, r.queries.update, person.Name, person.Surname, person.ID).
		Scan(&p.ID, &p.Name, &p.Surname)
	if err != nil {
		return models.Person{}, entityLookupError(ctx, "personRepository.UpdatePerson", err)
	}
	return p, nil
}

// DeletePerson removes the person. Deleting a director deletes its movies.
func (r *personRepository) DeletePerson(ctx context.Context, id int64) error {
	return r.db.deleteEntity(ctx, "personRepository.DeletePerson", r.queries.delete, id)
}

// entityLookupError maps the error of a single-row entity statement.
func entityLookupError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrEntityNotFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrEntityAlreadyExists
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("entity query failed")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (db *DB) deleteEntity(ctx context.Context, funcName, query string, id int64) error {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("id", id).Msg("failed to delete entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrEntityNotFound)
}
