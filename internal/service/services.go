package service

import (
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	CategoryService CategoryService
	ActorService    PersonService
	DirectorService PersonService
	MovieService    MovieService
	RatingService   RatingService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	categoryService := NewCategoryService(storages.CategoryRepository, logger)
	actorService := NewPersonService(storages.ActorRepository, models.EntityActor, logger)
	directorService := NewPersonService(storages.DirectorRepository, models.EntityDirector, logger)

	ratingService := NewRatingValidationService().Wrap(
		NewRatingService(storages.RatingRepository, storages.MovieRepository, logger),
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App.SessionHashKey, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
		CategoryService: categoryService,
		ActorService:    actorService,
		DirectorService: directorService,
		MovieService:    NewMovieService(storages.MovieRepository, categoryService, actorService, directorService, cfg.App, logger),
		RatingService:   ratingService,
		AppInfoService:  appInfoService,
	}, nil
}
