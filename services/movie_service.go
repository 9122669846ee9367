package services

import (
	"context"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MovieService struct {
	movies  repository.MovieRepository
	authors authorResolver
	now     Clock
}

func NewMovieService(movies repository.MovieRepository, users repository.UserRepository) *MovieService {
	return &MovieService{movies: movies, authors: authorResolver{users: users}, now: systemClock}
}

// Create stores a new movie authored by actor.
func (s *MovieService) Create(ctx context.Context, actor bson.ObjectID, in models.MovieInput) (*models.MovieView, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	movie := &models.Movie{
		Title:     in.Title,
		Director:  in.Director,
		Category:  in.Category,
		Year:      in.Year,
		Author:    actor,
		Reviews:   []models.Review{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.movies.Insert(ctx, movie); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("movie_id", movie.ID.Hex()).Str("title", movie.Title).Msg("movie created")
	return s.view(ctx, movie)
}

// List returns every movie, newest first, with authors expanded.
func (s *MovieService) List(ctx context.Context) ([]models.MovieView, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*models.Movie, len(movies))
	for i := range movies {
		ptrs[i] = &movies[i]
	}
	author, err := s.authors.resolve(ctx, models.AuthorIDs(ptrs...))
	if err != nil {
		return nil, err
	}

	views := make([]models.MovieView, 0, len(movies))
	for _, m := range ptrs {
		views = append(views, models.NewMovieView(m, author))
	}
	return views, nil
}

// Get returns one movie with its reviews populated.
func (s *MovieService) Get(ctx context.Context, movieID string) (*models.MovieView, error) {
	id, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, movie)
}

// Update merges the provided fields onto the movie. Only the author may update it.
func (s *MovieService) Update(ctx context.Context, actor bson.ObjectID, movieID string, in models.MovieUpdate) (*models.MovieView, error) {
	id, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(movie.Author, actor); err != nil {
		return nil, err
	}

	updated, err := s.movies.Update(ctx, id, in, s.now())
	if err != nil {
		return nil, err
	}
	return s.view(ctx, updated)
}

// Delete removes the movie with all its reviews and comments, returning what was removed.
func (s *MovieService) Delete(ctx context.Context, actor bson.ObjectID, movieID string) (*models.MovieView, error) {
	id, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(movie.Author, actor); err != nil {
		return nil, err
	}

	removed, err := s.movies.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("movie_id", id.Hex()).Int("reviews", len(removed.Reviews)).Msg("movie deleted")
	return s.view(ctx, removed)
}

func (s *MovieService) view(ctx context.Context, movie *models.Movie) (*models.MovieView, error) {
	author, err := s.authors.resolve(ctx, models.AuthorIDs(movie))
	if err != nil {
		return nil, err
	}
	v := models.NewMovieView(movie, author)
	return &v, nil
}
