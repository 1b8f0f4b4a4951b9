package seeder

import "errors"

var (
	ErrMissingTitle    = errors.New("title is required")
	ErrMissingDirector = errors.New("director is required")
	ErrDuplicateTitle  = errors.New("duplicate movie title")
	ErrNotStaff        = errors.New("seeding requires a staff account")
)
