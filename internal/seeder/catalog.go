// Package seeder fills a running catalog API from a YAML catalog file.
//
// Every entity goes through the public API as a staff user, so the server's
// normalization and validation apply exactly as they do for the admin UI.
package seeder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-film-catalog/models"
	"gopkg.in/yaml.v3"
)

// Catalog is the on-disk shape of a seed file.
type Catalog struct {
	Categories []string      `yaml:"categories"`
	Actors     []PersonEntry `yaml:"actors"`
	Directors  []PersonEntry `yaml:"directors"`
	Movies     []MovieEntry  `yaml:"movies"`
}

type PersonEntry struct {
	Name    string `yaml:"name"`
	Surname string `yaml:"surname"`
}

// MovieEntry is one movie; people and genres are given by name and resolved
// by the server.
type MovieEntry struct {
	Title       string        `yaml:"title"`
	Synopsis    string        `yaml:"synopsis"`
	Duration    int           `yaml:"duration"`
	ReleaseDate string        `yaml:"release_date"`
	Language    string        `yaml:"language"`
	Poster      string        `yaml:"poster"`
	Director    PersonEntry   `yaml:"director"`
	Actors      []PersonEntry `yaml:"actors"`
	Genres      []string      `yaml:"genres"`
}

// LoadCatalog reads and validates the catalog at path. Unknown keys are
// rejected so that a typo does not silently drop data.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var catalog Catalog
	if err = dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("error decoding catalog file %q: %w", path, err)
	}

	if err = catalog.Validate(); err != nil {
		return nil, err
	}

	return &catalog, nil
}

// Validate checks what the server cannot: every movie has a title and a
// director, and titles are unique within the file.
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(c.Movies))

	for i, m := range c.Movies {
		title := strings.TrimSpace(m.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("movie #%d: %w", i+1, ErrMissingTitle))
			continue
		}
		if strings.TrimSpace(m.Director.Name) == "" {
			errs = append(errs, fmt.Errorf("movie %q: %w", title, ErrMissingDirector))
		}

		key := strings.ToLower(title)
		if _, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("movie %q: %w", title, ErrDuplicateTitle))
		}
		seen[key] = struct{}{}
	}

	return errors.Join(errs...)
}

func (p PersonEntry) person() models.Person {
	return models.Person{Name: p.Name, Surname: p.Surname}
}

func (p PersonEntry) String() string {
	return p.person().DisplayName()
}

// input converts the entry to the API body. Empty optional fields are left
// nil so the server applies its defaults.
func (m MovieEntry) input() models.MovieInput {
	director := m.Director.person()
	actors := make([]models.Person, 0, len(m.Actors))
	for _, a := range m.Actors {
		actors = append(actors, a.person())
	}
	genres := append([]string{}, m.Genres...)

	in := models.MovieInput{
		Title:    &m.Title,
		Synopsis: &m.Synopsis,
		Duration: &m.Duration,
		Director: &director,
		Actors:   &actors,
		Genres:   &genres,
	}
	if m.ReleaseDate != "" {
		in.ReleaseDate = &m.ReleaseDate
	}
	if m.Language != "" {
		in.Language = &m.Language
	}
	if m.Poster != "" {
		in.Poster = &m.Poster
	}

	return in
}
