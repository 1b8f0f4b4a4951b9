// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
)

// categoryService validates raw names, normalizes them, and hands the
// canonical form to the store.
type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validators.NewCatalogValidator(),
		logger:             logger,
	}
}

func (s *categoryService) GetOrCreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error) {
	name, err := s.canonicalName(ctx, category)
	if err != nil {
		return models.Category{}, false, err
	}

	stored, created, err := s.categoryRepository.GetOrCreateCategory(ctx, name)
	if err != nil {
		return models.Category{}, false, err
	}

	if created {
		logger.FromContext(ctx).Info().Str("category", stored.Name).Msg("category created")
	}
	return stored, created, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepository.ListCategories(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return s.categoryRepository.GetCategory(ctx, id)
}

// UpdateCategory renames the category to the normalized form of
// category.Name.
func (s *categoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	name, err := s.canonicalName(ctx, category)
	if err != nil {
		return models.Category{}, err
	}

	category.Name = name
	return s.categoryRepository.UpdateCategory(ctx, category)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) canonicalName(ctx context.Context, category models.Category) (string, error) {
	if err := s.validator.Validate(ctx, category); err != nil {
		return "", err
	}

	name := Normalize(category.Name)
	if name == "" {
		return "", validators.ErrInvalidName
	}
	return name, nil
}

// personService is the actor or director flavour of the normalized
// catalog, depending on the repository it is built with.
type personService struct {
	personRepository store.PersonRepository
	kind             models.EntityKind
	validator        validators.Validator

	logger *logger.Logger
}

func NewPersonService(personRepository store.PersonRepository, kind models.EntityKind, logger *logger.Logger) PersonService {
	return &personService{
		personRepository: personRepository,
		kind:             kind,
		validator:        validators.NewCatalogValidator(),
		logger:           logger,
	}
}

func (s *personService) GetOrCreatePerson(ctx context.Context, person models.Person) (models.Person, bool, error) {
	canonical, err := s.canonicalPerson(ctx, person)
	if err != nil {
		return models.Person{}, false, err
	}

	stored, created, err := s.personRepository.GetOrCreatePerson(ctx, canonical)
	if err != nil {
		return models.Person{}, false, err
	}

	if created {
		logger.FromContext(ctx).Info().
			Str("kind", string(s.kind)).
			Str("person", stored.DisplayName()).
			Msg("person created")
	}
	return stored, created, nil
}

func (s *personService) ListPeople(ctx context.Context) ([]models.Person, error) {
	return s.personRepository.ListPeople(ctx)
}

func (s *personService) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	return s.personRepository.GetPerson(ctx, id)
}

func (s *personService) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	canonical, err := s.canonicalPerson(ctx, person)
	if err != nil {
		return models.Person{}, err
	}
	return s.personRepository.UpdatePerson(ctx, canonical)
}

func (s *personService) DeletePerson(ctx context.Context, id int64) error {
	return s.personRepository.DeletePerson(ctx, id)
}

func (s *personService) canonicalPerson(ctx context.Context, person models.Person) (models.Person, error) {
	if err := s.validator.Validate(ctx, person); err != nil {
		return models.Person{}, err
	}

	canonical := NormalizePerson(person)
	if canonical.Name == "" {
		return models.Person{}, validators.ErrInvalidName
	}
	return canonical, nil
}
