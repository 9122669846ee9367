package services

import (
	"context"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	errReviewNotFound  = apperr.NotFound("review not found")
	errCommentNotFound = apperr.NotFound("comment not found")
)

type ReviewService struct {
	movies  repository.MovieRepository
	authors authorResolver
	now     Clock
}

func NewReviewService(movies repository.MovieRepository, users repository.UserRepository) *ReviewService {
	return &ReviewService{movies: movies, authors: authorResolver{users: users}, now: systemClock}
}

// Create appends a review by actor to the movie.
func (s *ReviewService) Create(ctx context.Context, actor bson.ObjectID, movieID string, in models.ReviewInput) (*models.ReviewView, error) {
	mid, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	review := &models.Review{
		ID:        bson.NewObjectID(),
		Title:     in.Title,
		Text:      in.Text,
		Notes:     in.Notes,
		Author:    actor,
		Comments:  []models.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.movies.PushReview(ctx, mid, review); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("movie_id", movieID).Str("review_id", review.ID.Hex()).Msg("review created")
	return s.view(ctx, review)
}

// List returns the movie's reviews in creation order.
func (s *ReviewService) List(ctx context.Context, movieID string) ([]models.ReviewView, error) {
	mid, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.FindByID(ctx, mid)
	if err != nil {
		return nil, err
	}
	author, err := s.authors.resolve(ctx, models.AuthorIDs(movie))
	if err != nil {
		return nil, err
	}

	views := make([]models.ReviewView, 0, len(movie.Reviews))
	for i := range movie.Reviews {
		views = append(views, models.NewReviewView(&movie.Reviews[i], author))
	}
	return views, nil
}

func (s *ReviewService) Get(ctx context.Context, movieID, reviewID string) (*models.ReviewView, error) {
	_, review, err := s.load(ctx, movieID, reviewID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, review)
}

// Update merges the provided fields onto the review. Only the review's author may update it.
func (s *ReviewService) Update(ctx context.Context, actor bson.ObjectID, movieID, reviewID string, in models.ReviewUpdate) (*models.ReviewView, error) {
	movie, review, err := s.load(ctx, movieID, reviewID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := authorize(review.Author, actor); err != nil {
		return nil, err
	}

	updated, err := s.movies.UpdateReview(ctx, movie.ID, review.ID, in, s.now())
	if err != nil {
		return nil, err
	}
	return s.view(ctx, updated)
}

// Delete removes the review and its comments. Only the review's author may delete it.
func (s *ReviewService) Delete(ctx context.Context, actor bson.ObjectID, movieID, reviewID string) error {
	movie, review, err := s.load(ctx, movieID, reviewID)
	if err != nil {
		return err
	}
	if err := authorize(review.Author, actor); err != nil {
		return err
	}
	if err := s.movies.PullReview(ctx, movie.ID, review.ID, s.now()); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("movie_id", movieID).Str("review_id", reviewID).Msg("review deleted")
	return nil
}

func (s *ReviewService) load(ctx context.Context, movieID, reviewID string) (*models.Movie, *models.Review, error) {
	mid, err := parseID("movie", movieID)
	if err != nil {
		return nil, nil, err
	}
	rid, err := parseID("review", reviewID)
	if err != nil {
		return nil, nil, err
	}
	movie, err := s.movies.FindByID(ctx, mid)
	if err != nil {
		return nil, nil, err
	}
	review := movie.FindReview(rid)
	if review == nil {
		return nil, nil, errReviewNotFound
	}
	return movie, review, nil
}

func (s *ReviewService) view(ctx context.Context, review *models.Review) (*models.ReviewView, error) {
	author, err := s.authors.resolve(ctx, models.AuthorIDs(&models.Movie{Reviews: []models.Review{*review}}))
	if err != nil {
		return nil, err
	}
	v := models.NewReviewView(review, author)
	return &v, nil
}
