package store

import (
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/models"
)

// Storages aggregates every repository of the catalog so that it can be
// handed to the service layer as a single dependency.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	CategoryRepository CategoryRepository
	ActorRepository    PersonRepository
	DirectorRepository PersonRepository
	MovieRepository    MovieRepository
	RatingRepository   RatingRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		ActorRepository:    NewPersonRepository(db, models.EntityActor, logger),
		DirectorRepository: NewPersonRepository(db, models.EntityDirector, logger),
		MovieRepository:    NewMovieRepository(db, logger),
		RatingRepository:   NewRatingRepository(db, logger),
	}
}
