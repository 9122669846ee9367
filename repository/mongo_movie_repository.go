package repository

import (
	"context"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/database"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	errMovieNotFound   = apperr.NotFound("movie not found")
	errReviewNotFound  = apperr.NotFound("review not found")
	errCommentNotFound = apperr.NotFound("comment not found")
	errTitleTaken      = apperr.Conflict("a movie with this title already exists")
	errEmailTaken      = apperr.Conflict("user already exists")
)

type MongoMovieRepository struct {
	col *mongo.Collection
}

func NewMongoMovieRepository(db *mongo.Database) *MongoMovieRepository {
	return &MongoMovieRepository{col: db.Collection(database.MoviesCollection)}
}

func (r *MongoMovieRepository) Insert(ctx context.Context, movie *models.Movie) error {
	if movie.ID.IsZero() {
		movie.ID = bson.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, movie); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errTitleTaken
		}
		return errors.Wrap(err, "insert movie")
	}
	return nil
}

func (r *MongoMovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find movies")
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, errors.Wrap(err, "decode movies")
	}
	return movies, nil
}

func (r *MongoMovieRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errMovieNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find movie")
	}
	return &movie, nil
}

func (r *MongoMovieRepository) Update(ctx context.Context, id bson.ObjectID, patch models.MovieUpdate, at time.Time) (*models.Movie, error) {
	set := bson.M{"updatedAt": at}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Director != nil {
		set["director"] = *patch.Director
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}

	var movie models.Movie
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&movie)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, errMovieNotFound
	case mongo.IsDuplicateKeyError(err):
		return nil, errTitleTaken
	case err != nil:
		return nil, errors.Wrap(err, "update movie")
	}
	return &movie, nil
}

func (r *MongoMovieRepository) Delete(ctx context.Context, id bson.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errMovieNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "delete movie")
	}
	return &movie, nil
}

func (r *MongoMovieRepository) PushReview(ctx context.Context, movieID bson.ObjectID, review *models.Review) error {
	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updatedAt": review.CreatedAt},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": movieID}, update)
	if err != nil {
		return errors.Wrap(err, "push review")
	}
	if res.MatchedCount == 0 {
		return errMovieNotFound
	}
	return nil
}

func (r *MongoMovieRepository) UpdateReview(ctx context.Context, movieID, reviewID bson.ObjectID, patch models.ReviewUpdate, at time.Time) (*models.Review, error) {
	set := bson.M{"updatedAt": at, "reviews.$[r].updatedAt": at}
	if patch.Title != nil {
		set["reviews.$[r].title"] = *patch.Title
	}
	if patch.Text != nil {
		set["reviews.$[r].text"] = *patch.Text
	}
	if patch.Notes != nil {
		set["reviews.$[r].notes"] = *patch.Notes
	}

	filter := bson.M{"_id": movieID, "reviews._id": reviewID}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters([]any{bson.M{"r._id": reviewID}})

	var movie models.Movie
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missing(ctx, movieID, errReviewNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "update review")
	}
	review := movie.FindReview(reviewID)
	if review == nil {
		return nil, errReviewNotFound
	}
	return review, nil
}

func (r *MongoMovieRepository) PullReview(ctx context.Context, movieID, reviewID bson.ObjectID, at time.Time) error {
	update := bson.M{
		"$pull": bson.M{"reviews": bson.M{"_id": reviewID}},
		"$set":  bson.M{"updatedAt": at},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": movieID, "reviews._id": reviewID}, update)
	if err != nil {
		return errors.Wrap(err, "pull review")
	}
	if res.MatchedCount == 0 {
		return r.missing(ctx, movieID, errReviewNotFound)
	}
	return nil
}

func (r *MongoMovieRepository) PushComment(ctx context.Context, movieID, reviewID bson.ObjectID, comment *models.Comment) error {
	update := bson.M{
		"$push": bson.M{"reviews.$.comments": comment},
		"$set":  bson.M{"updatedAt": comment.CreatedAt},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": movieID, "reviews._id": reviewID}, update)
	if err != nil {
		return errors.Wrap(err, "push comment")
	}
	if res.MatchedCount == 0 {
		return r.missing(ctx, movieID, errReviewNotFound)
	}
	return nil
}

func (r *MongoMovieRepository) UpdateComment(ctx context.Context, movieID, reviewID, commentID bson.ObjectID, text string, at time.Time) (*models.Comment, error) {
	filter := bson.M{
		"_id":     movieID,
		"reviews": bson.M{"$elemMatch": bson.M{"_id": reviewID, "comments._id": commentID}},
	}
	update := bson.M{"$set": bson.M{
		"updatedAt":                            at,
		"reviews.$[r].comments.$[c].text":      text,
		"reviews.$[r].comments.$[c].updatedAt": at,
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters([]any{bson.M{"r._id": reviewID}, bson.M{"c._id": commentID}})

	var movie models.Movie
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missingComment(ctx, movieID, reviewID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "update comment")
	}
	review := movie.FindReview(reviewID)
	if review == nil {
		return nil, errReviewNotFound
	}
	comment := review.FindComment(commentID)
	if comment == nil {
		return nil, errCommentNotFound
	}
	return comment, nil
}

func (r *MongoMovieRepository) PullComment(ctx context.Context, movieID, reviewID, commentID bson.ObjectID, at time.Time) error {
	filter := bson.M{
		"_id":     movieID,
		"reviews": bson.M{"$elemMatch": bson.M{"_id": reviewID, "comments._id": commentID}},
	}
	update := bson.M{
		"$pull": bson.M{"reviews.$[r].comments": bson.M{"_id": commentID}},
		"$set":  bson.M{"updatedAt": at},
	}
	opts := options.UpdateOne().SetArrayFilters([]any{bson.M{"r._id": reviewID}})
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.Wrap(err, "pull comment")
	}
	if res.MatchedCount == 0 {
		return r.missingComment(ctx, movieID, reviewID)
	}
	return nil
}

func (r *MongoMovieRepository) ReviewsByAuthor(ctx context.Context, userID bson.ObjectID) ([]models.UserReview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reviews.author": userID}}},
		{{Key: "$unwind", Value: "$reviews"}},
		{{Key: "$match", Value: bson.M{"reviews.author": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "reviews.createdAt", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":        0,
			"movieId":    "$_id",
			"movieTitle": "$title",
			"review":     "$reviews",
		}}},
	}
	out := []models.UserReview{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, errors.Wrap(err, "project user reviews")
	}
	return out, nil
}

func (r *MongoMovieRepository) CommentsByAuthor(ctx context.Context, userID bson.ObjectID) ([]models.UserComment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reviews.comments.author": userID}}},
		{{Key: "$unwind", Value: "$reviews"}},
		{{Key: "$unwind", Value: "$reviews.comments"}},
		{{Key: "$match", Value: bson.M{"reviews.comments.author": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "reviews.comments.createdAt", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"movieId":  "$_id",
			"reviewId": "$reviews._id",
			"comment":  "$reviews.comments",
		}}},
	}
	out := []models.UserComment{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, errors.Wrap(err, "project user comments")
	}
	return out, nil
}

func (r *MongoMovieRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// missing tells apart an absent movie from an absent child after a targeted update matched nothing.
func (r *MongoMovieRepository) missing(ctx context.Context, movieID bson.ObjectID, childErr error) error {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": movieID}, options.Count().SetLimit(1))
	if err != nil {
		return errors.Wrap(err, "count movie")
	}
	if n == 0 {
		return errMovieNotFound
	}
	return childErr
}

func (r *MongoMovieRepository) missingComment(ctx context.Context, movieID, reviewID bson.ObjectID) error {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": movieID, "reviews._id": reviewID}, options.Count().SetLimit(1))
	if err != nil {
		return errors.Wrap(err, "count review")
	}
	if n == 0 {
		return r.missing(ctx, movieID, errReviewNotFound)
	}
	return errCommentNotFound
}
