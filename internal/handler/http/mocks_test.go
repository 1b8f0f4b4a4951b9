package http

import (
	"context"

	"github.com/MKhiriev/go-film-catalog/models"
)

// Hand-written fn-field doubles of the service interfaces. A nil function
// field panics when called, which fails the test that did not expect the
// call.

type mockAuthService struct {
	registerFn     func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.Session, error)
	resolveFn      func(ctx context.Context, token string) (models.AuthContext, error)
	requireAdminFn func(ctx context.Context, token string) (models.AuthContext, error)
	logoutFn       func(ctx context.Context, token string) error
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) Resolve(ctx context.Context, token string) (models.AuthContext, error) {
	return m.resolveFn(ctx, token)
}

func (m *mockAuthService) RequireAdmin(ctx context.Context, token string) (models.AuthContext, error) {
	return m.requireAdminFn(ctx, token)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

type mockUserService struct {
	getProfileFn    func(ctx context.Context, auth models.AuthContext) (models.User, error)
	updateProfileFn func(ctx context.Context, auth models.AuthContext, update models.UserUpdate) (models.User, error)
	deleteAccountFn func(ctx context.Context, auth models.AuthContext) error
}

func (m *mockUserService) GetProfile(ctx context.Context, auth models.AuthContext) (models.User, error) {
	return m.getProfileFn(ctx, auth)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, auth models.AuthContext, update models.UserUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, auth, update)
}

func (m *mockUserService) DeleteAccount(ctx context.Context, auth models.AuthContext) error {
	return m.deleteAccountFn(ctx, auth)
}

type mockCategoryService struct {
	getOrCreateFn func(ctx context.Context, category models.Category) (models.Category, bool, error)
	listFn        func(ctx context.Context) ([]models.Category, error)
	getFn         func(ctx context.Context, id int64) (models.Category, error)
	updateFn      func(ctx context.Context, category models.Category) (models.Category, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockCategoryService) GetOrCreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error) {
	return m.getOrCreateFn(ctx, category)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return m.getFn(ctx, id)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.updateFn(ctx, category)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockPersonService struct {
	getOrCreateFn func(ctx context.Context, person models.Person) (models.Person, bool, error)
	listFn        func(ctx context.Context) ([]models.Person, error)
	getFn         func(ctx context.Context, id int64) (models.Person, error)
	updateFn      func(ctx context.Context, person models.Person) (models.Person, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockPersonService) GetOrCreatePerson(ctx context.Context, person models.Person) (models.Person, bool, error) {
	return m.getOrCreateFn(ctx, person)
}

func (m *mockPersonService) ListPeople(ctx context.Context) ([]models.Person, error) {
	return m.listFn(ctx)
}

func (m *mockPersonService) GetPerson(ctx context.Context, id int64) (models.Person, error) {
	return m.getFn(ctx, id)
}

func (m *mockPersonService) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	return m.updateFn(ctx, person)
}

func (m *mockPersonService) DeletePerson(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockMovieService struct {
	listFn   func(ctx context.Context, filter models.MovieFilter) (models.Page[models.MovieView], error)
	getFn    func(ctx context.Context, id int64) (models.MovieView, error)
	createFn func(ctx context.Context, input models.MovieInput) (models.MovieView, error)
	updateFn func(ctx context.Context, id int64, input models.MovieInput, partial bool) (models.MovieView, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockMovieService) ListMovies(ctx context.Context, filter models.MovieFilter) (models.Page[models.MovieView], error) {
	return m.listFn(ctx, filter)
}

func (m *mockMovieService) GetMovie(ctx context.Context, id int64) (models.MovieView, error) {
	return m.getFn(ctx, id)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, input models.MovieInput) (models.MovieView, error) {
	return m.createFn(ctx, input)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, id int64, input models.MovieInput, partial bool) (models.MovieView, error) {
	return m.updateFn(ctx, id, input, partial)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockRatingService struct {
	createFn       func(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error)
	listForMovieFn func(ctx context.Context, movieID int64) ([]models.RatingView, error)
	getOwnFn       func(ctx context.Context, auth models.AuthContext, movieID int64) (models.Rating, error)
	updateOwnFn    func(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error)
	deleteOwnFn    func(ctx context.Context, auth models.AuthContext, movieID int64) error
	listOwnFn      func(ctx context.Context, auth models.AuthContext) ([]models.UserRating, error)
}

func (m *mockRatingService) CreateRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error) {
	return m.createFn(ctx, auth, movieID, input)
}

func (m *mockRatingService) ListRatingsForMovie(ctx context.Context, movieID int64) ([]models.RatingView, error) {
	return m.listForMovieFn(ctx, movieID)
}

func (m *mockRatingService) GetOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) (models.Rating, error) {
	return m.getOwnFn(ctx, auth, movieID)
}

func (m *mockRatingService) UpdateOwnRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error) {
	return m.updateOwnFn(ctx, auth, movieID, input)
}

func (m *mockRatingService) DeleteOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) error {
	return m.deleteOwnFn(ctx, auth, movieID)
}

func (m *mockRatingService) ListOwnRatings(ctx context.Context, auth models.AuthContext) ([]models.UserRating, error) {
	return m.listOwnFn(ctx, auth)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
