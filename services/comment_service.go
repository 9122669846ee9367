package services

import (
	"context"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentService struct {
	movies  repository.MovieRepository
	authors authorResolver
	now     Clock
}

func NewCommentService(movies repository.MovieRepository, users repository.UserRepository) *CommentService {
	return &CommentService{movies: movies, authors: authorResolver{users: users}, now: systemClock}
}

// Create appends a comment by actor to the review.
func (s *CommentService) Create(ctx context.Context, actor bson.ObjectID, movieID, reviewID string, in models.CommentInput) (*models.CommentView, error) {
	mid, err := parseID("movie", movieID)
	if err != nil {
		return nil, err
	}
	rid, err := parseID("review", reviewID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	comment := &models.Comment{
		ID:        bson.NewObjectID(),
		Text:      in.Text,
		Author:    actor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.movies.PushComment(ctx, mid, rid, comment); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("review_id", reviewID).Str("comment_id", comment.ID.Hex()).Msg("comment created")
	return s.view(ctx, comment)
}

// Update replaces the comment's text. Only the comment's author may update it.
func (s *CommentService) Update(ctx context.Context, actor bson.ObjectID, movieID, reviewID, commentID string, in models.CommentInput) (*models.CommentView, error) {
	mid, rid, comment, err := s.load(ctx, movieID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := authorize(comment.Author, actor); err != nil {
		return nil, err
	}

	updated, err := s.movies.UpdateComment(ctx, mid, rid, comment.ID, in.Text, s.now())
	if err != nil {
		return nil, err
	}
	return s.view(ctx, updated)
}

// Delete removes the comment. Only the comment's author may delete it.
func (s *CommentService) Delete(ctx context.Context, actor bson.ObjectID, movieID, reviewID, commentID string) error {
	mid, rid, comment, err := s.load(ctx, movieID, reviewID, commentID)
	if err != nil {
		return err
	}
	if err := authorize(comment.Author, actor); err != nil {
		return err
	}
	if err := s.movies.PullComment(ctx, mid, rid, comment.ID, s.now()); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("review_id", reviewID).Str("comment_id", commentID).Msg("comment deleted")
	return nil
}

func (s *CommentService) load(ctx context.Context, movieID, reviewID, commentID string) (bson.ObjectID, bson.ObjectID, *models.Comment, error) {
	nilID := bson.NilObjectID
	mid, err := parseID("movie", movieID)
	if err != nil {
		return nilID, nilID, nil, err
	}
	rid, err := parseID("review", reviewID)
	if err != nil {
		return nilID, nilID, nil, err
	}
	cid, err := parseID("comment", commentID)
	if err != nil {
		return nilID, nilID, nil, err
	}

	movie, err := s.movies.FindByID(ctx, mid)
	if err != nil {
		return nilID, nilID, nil, err
	}
	review := movie.FindReview(rid)
	if review == nil {
		return nilID, nilID, nil, errReviewNotFound
	}
	comment := review.FindComment(cid)
	if comment == nil {
		return nilID, nilID, nil, errCommentNotFound
	}
	return mid, rid, comment, nil
}

func (s *CommentService) view(ctx context.Context, comment *models.Comment) (*models.CommentView, error) {
	author, err := s.authors.resolve(ctx, []bson.ObjectID{comment.Author})
	if err != nil {
		return nil, err
	}
	v := models.NewCommentView(comment, author)
	return &v, nil
}
