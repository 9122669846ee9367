// Package repository persists movies (with their embedded reviews and comments) and users.
//
// Child mutations are expressed as targeted operations on the parent document so
// concurrent edits to different reviews or comments of one movie do not overwrite each other.
// Every method returns apperr.NotFound when an addressed movie, review or comment is absent,
// and apperr.Conflict when a unique field is already taken.
package repository

import (
	"context"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MovieRepository interface {
	Insert(ctx context.Context, movie *models.Movie) error
	// List returns every movie, newest first.
	List(ctx context.Context) ([]models.Movie, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Movie, error)
	Update(ctx context.Context, id bson.ObjectID, patch models.MovieUpdate, at time.Time) (*models.Movie, error)
	Delete(ctx context.Context, id bson.ObjectID) (*models.Movie, error)

	PushReview(ctx context.Context, movieID bson.ObjectID, review *models.Review) error
	UpdateReview(ctx context.Context, movieID, reviewID bson.ObjectID, patch models.ReviewUpdate, at time.Time) (*models.Review, error)
	PullReview(ctx context.Context, movieID, reviewID bson.ObjectID, at time.Time) error

	PushComment(ctx context.Context, movieID, reviewID bson.ObjectID, comment *models.Comment) error
	UpdateComment(ctx context.Context, movieID, reviewID, commentID bson.ObjectID, text string, at time.Time) (*models.Comment, error)
	PullComment(ctx context.Context, movieID, reviewID, commentID bson.ObjectID, at time.Time) error

	// ReviewsByAuthor and CommentsByAuthor project a user's contributions out of the movies, newest first.
	ReviewsByAuthor(ctx context.Context, userID bson.ObjectID) ([]models.UserReview, error)
	CommentsByAuthor(ctx context.Context, userID bson.ObjectID) ([]models.UserComment, error)
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByIDs returns the users that exist; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.User, error)
}

var (
	_ MovieRepository = (*MongoMovieRepository)(nil)
	_ MovieRepository = (*MemoryMovieRepository)(nil)
	_ UserRepository  = (*MongoUserRepository)(nil)
	_ UserRepository  = (*MemoryUserRepository)(nil)
)
