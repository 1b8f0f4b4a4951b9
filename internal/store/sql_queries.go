package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, first_name, last_name, email, password_hash, is_staff, created_at`

	createUser = `INSERT INTO users (first_name, last_name, email, password_hash, is_staff)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateUser = `UPDATE users
    SET first_name = $1, last_name = $2, email = $3, password_hash = $4
    WHERE id = $5
    RETURNING ` + userColumns + `;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createSession = `INSERT INTO sessions (token_hash, user_id) VALUES ($1, $2);`

	findSessionUser = `SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash, u.is_staff, u.created_at
    FROM sessions s
    JOIN users u ON u.id = s.user_id
    WHERE s.token_hash = $1;`

	deleteSession = `DELETE FROM sessions WHERE token_hash = $1;`

	insertCategory = `INSERT INTO categories (name) VALUES ($1)
    ON CONFLICT (name) DO NOTHING
    RETURNING id, name;`
	selectCategoryByName = `SELECT id, name FROM categories WHERE name = $1;`
	listCategories       = `SELECT id, name FROM categories ORDER BY name, id;`
	getCategory          = `SELECT id, name FROM categories WHERE id = $1;`
	updateCategory       = `UPDATE categories SET name = $1 WHERE id = $2 RETURNING id, name;`
	deleteCategory       = `DELETE FROM categories WHERE id = $1;`

	// People templates take the table name (actors or directors).
	insertPersonTemplate = `INSERT INTO %s (name, surname) VALUES ($1, $2)
    ON CONFLICT (name, surname) DO NOTHING
    RETURNING id, name, surname;`
	selectPersonByNameTemplate = `SELECT id, name, surname FROM %s WHERE name = $1 AND surname = $2;`
	listPeopleTemplate         = `SELECT id, name, surname FROM %s ORDER BY name, surname, id;`
	getPersonTemplate          = `SELECT id, name, surname FROM %s WHERE id = $1;`
	updatePersonTemplate       = `UPDATE %s SET name = $1, surname = $2 WHERE id = $3 RETURNING id, name, surname;`
	deletePersonTemplate       = `DELETE FROM %s WHERE id = $1;`

	getMovie = `SELECT id, title, synopsis, duration, release_date, language, poster, director_id
    FROM movies
    WHERE id = $1;`
	getMovieGenreIDs = `SELECT category_id FROM movie_genres WHERE movie_id = $1 ORDER BY category_id;`
	getMovieActorIDs = `SELECT actor_id FROM movie_actors WHERE movie_id = $1 ORDER BY actor_id;`
	movieExists      = `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1);`

	insertMovie = `INSERT INTO movies (title, synopsis, duration, release_date, language, poster, director_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id;`
	deleteMovieGenres = `DELETE FROM movie_genres WHERE movie_id = $1;`
	deleteMovieActors = `DELETE FROM movie_actors WHERE movie_id = $1;`
	deleteMovie       = `DELETE FROM movies WHERE id = $1;`

	lockMovieForShare = `SELECT id FROM movies WHERE id = $1 FOR SHARE;`
	insertRating      = `INSERT INTO ratings (user_id, movie_id, rating, comment)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`
	listMovieRatings = `SELECT r.id, u.email, r.rating, r.comment
    FROM ratings r
    JOIN users u ON u.id = r.user_id
    WHERE r.movie_id = $1
    ORDER BY r.id;`
	getUserRating = `SELECT id, user_id, movie_id, rating, comment
    FROM ratings
    WHERE user_id = $1 AND movie_id = $2;`
	updateUserRating = `UPDATE ratings
    SET rating = $1, comment = $2
    WHERE user_id = $3 AND movie_id = $4
    RETURNING id;`
	deleteUserRating = `DELETE FROM ratings WHERE user_id = $1 AND movie_id = $2;`
	listUserRatings  = `SELECT r.id, m.id, m.title, m.poster, r.rating, r.comment
    FROM ratings r
    JOIN movies m ON m.id = r.movie_id
    WHERE r.user_id = $1
    ORDER BY r.id;`
)

// Constraint names from the schema, used to tell unique violations apart.
const (
	constraintUsersEmail  = "users_email_key"
	constraintRatingsUser = "ratings_user_movie_key"
)

// psql builds Postgres statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// movieViewColumns are the base columns of a movie listing row. The director
// is joined in; actors, genres, and the rating mean are loaded in batch.
var movieViewColumns = []string{
	"m.id", "m.title", "m.synopsis", "m.duration", "m.release_date",
	"m.language", "m.poster", "d.name", "d.surname",
}

// buildListMoviesQuery builds the filtered, ordered, paginated listing.
func buildListMoviesQuery(filter models.MovieFilter) (string, []any, error) {
	q := psql.Select(movieViewColumns...).
		From("movies m").
		Join("directors d ON d.id = m.director_id")

	conds, err := movieFilterConditions(filter)
	if err != nil {
		return "", nil, err
	}
	if len(conds) > 0 {
		q = q.Where(conds)
	}

	// Byte order keeps the listing stable across database locales.
	q = q.OrderBy(`m.title COLLATE "C" ASC`, "m.id ASC")
	if filter.PageSize > 0 {
		q = q.Limit(uint64(filter.PageSize)).Offset(filter.Offset())
	}

	return q.ToSql()
}

// buildCountMoviesQuery counts the rows buildListMoviesQuery would page over.
func buildCountMoviesQuery(filter models.MovieFilter) (string, []any, error) {
	q := psql.Select("COUNT(*)").
		From("movies m").
		Join("directors d ON d.id = m.director_id")

	conds, err := movieFilterConditions(filter)
	if err != nil {
		return "", nil, err
	}
	if len(conds) > 0 {
		q = q.Where(conds)
	}

	return q.ToSql()
}

func buildMovieViewByIDQuery(id int64) (string, []any, error) {
	return psql.Select(movieViewColumns...).
		From("movies m").
		Join("directors d ON d.id = m.director_id").
		Where(squirrel.Eq{"m.id": id}).
		ToSql()
}

// movieFilterConditions translates filter into ANDed predicates. Genre and
// actor matches use EXISTS so that a movie appears once however many of its
// genres or actors match.
func movieFilterConditions(filter models.MovieFilter) (squirrel.And, error) {
	conds := squirrel.And{}

	if filter.Title != "" {
		conds = append(conds, squirrel.ILike{"m.title": containsPattern(filter.Title)})
	}
	if filter.Synopsis != "" {
		conds = append(conds, squirrel.ILike{"m.synopsis": containsPattern(filter.Synopsis)})
	}
	if filter.Language != "" {
		conds = append(conds, squirrel.ILike{"m.language": containsPattern(filter.Language)})
	}
	if filter.ReleaseDate != "" {
		conds = append(conds, squirrel.ILike{"m.release_date::text": containsPattern(filter.ReleaseDate)})
	}
	if filter.Genre != "" {
		conds = append(conds, squirrel.Expr(
			"EXISTS (SELECT 1 FROM movie_genres mg JOIN categories c ON c.id = mg.category_id WHERE mg.movie_id = m.id AND c.name ILIKE ?)",
			containsPattern(filter.Genre),
		))
	}
	if match := personMatch("d", filter.Director); match != nil {
		conds = append(conds, match)
	}
	if match := personMatch("a", filter.Actor); match != nil {
		sql, args, err := match.ToSql()
		if err != nil {
			return nil, fmt.Errorf("actor filter: %w", err)
		}
		conds = append(conds, squirrel.Expr(
			"EXISTS (SELECT 1 FROM movie_actors ma JOIN actors a ON a.id = ma.actor_id WHERE ma.movie_id = m.id AND "+sql+")",
			args...,
		))
	}
	if filter.MinRating != nil {
		conds = append(conds, squirrel.Expr(
			"m.id IN (SELECT movie_id FROM ratings GROUP BY movie_id HAVING AVG(rating) >= ?)",
			*filter.MinRating,
		))
	}

	return conds, nil
}

// personMatch matches a free-text person query against alias.name and
// alias.surname. A single token matches either column. With several tokens
// the first must equal one column (case-insensitively) and the rest must be
// contained in the other, in either order.
func personMatch(alias, query string) squirrel.Sqlizer {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return nil
	}

	name, surname := alias+".name", alias+".surname"

	if len(tokens) == 1 {
		pattern := containsPattern(tokens[0])
		return squirrel.Or{
			squirrel.ILike{name: pattern},
			squirrel.ILike{surname: pattern},
		}
	}

	first := tokens[0]
	rest := containsPattern(strings.Join(tokens[1:], " "))

	return squirrel.Or{
		squirrel.And{
			squirrel.Expr("lower("+name+") = lower(?)", first),
			squirrel.ILike{surname: rest},
		},
		squirrel.And{
			squirrel.Expr("lower("+surname+") = lower(?)", first),
			squirrel.ILike{name: rest},
		},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE substring pattern, escaping the LIKE
// metacharacters in s.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func buildAverageRatingsQuery(movieIDs []int64) (string, []any, error) {
	return psql.Select("movie_id", "ROUND(AVG(rating)::numeric, 2)::float8").
		From("ratings").
		Where(squirrel.Eq{"movie_id": movieIDs}).
		GroupBy("movie_id").
		ToSql()
}

func buildMovieActorsQuery(movieIDs []int64) (string, []any, error) {
	return psql.Select("ma.movie_id", "a.name", "a.surname").
		From("movie_actors ma").
		Join("actors a ON a.id = ma.actor_id").
		Where(squirrel.Eq{"ma.movie_id": movieIDs}).
		OrderBy("ma.movie_id", "a.name", "a.surname").
		ToSql()
}

func buildMovieGenresQuery(movieIDs []int64) (string, []any, error) {
	return psql.Select("mg.movie_id", "c.name").
		From("movie_genres mg").
		Join("categories c ON c.id = mg.category_id").
		Where(squirrel.Eq{"mg.movie_id": movieIDs}).
		OrderBy("mg.movie_id", "c.name").
		ToSql()
}

// buildInsertMovieLinksQuery inserts (movieID, id) pairs into a link table.
// table is movie_genres or movie_actors.
func buildInsertMovieLinksQuery(table string, movieID int64, ids []int64) (string, []any, error) {
	var column string
	switch table {
	case "movie_genres":
		column = "category_id"
	case "movie_actors":
		column = "actor_id"
	default:
		return "", nil, fmt.Errorf("%w: unknown link table %q", ErrBuildingSQLQuery, table)
	}

	if len(ids) == 0 {
		return "", nil, fmt.Errorf("%w: no ids for %s", ErrBuildingSQLQuery, table)
	}

	q := psql.Insert(table).Columns("movie_id", column)
	for _, id := range ids {
		q = q.Values(movieID, id)
	}

	return q.Suffix("ON CONFLICT DO NOTHING").ToSql()
}

func buildUpdateMovieQuery(movie models.Movie) (string, []any, error) {
	return psql.Update("movies").
		SetMap(map[string]any{
			"title":        movie.Title,
			"synopsis":     movie.Synopsis,
			"duration":     movie.Duration,
			"release_date": movie.ReleaseDate,
			"language":     movie.Language,
			"poster":       movie.Poster,
			"director_id":  movie.DirectorID,
		}).
		Where(squirrel.Eq{"id": movie.ID}).
		ToSql()
}

// personQueries holds the statements of one people table.
type personQueries struct {
	insert       string
	selectByName string
	list         string
	get          string
	update       string
	delete       string
}

func newPersonQueries(kind models.EntityKind) personQueries {
	table := string(kind)
	return personQueries{
		insert:       fmt.Sprintf(insertPersonTemplate, table),
		selectByName: fmt.Sprintf(selectPersonByNameTemplate, table),
		list:         fmt.Sprintf(listPeopleTemplate, table),
		get:          fmt.Sprintf(getPersonTemplate, table),
		update:       fmt.Sprintf(updatePersonTemplate, table),
		delete:       fmt.Sprintf(deletePersonTemplate, table),
	}
}
