package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Category is a movie genre. Only the values in Categories are accepted.
type Category string

const (
	CategoryAction         Category = "Action"
	CategoryAnimation      Category = "Animation"
	CategoryComedy         Category = "Comedy"
	CategoryDrama          Category = "Drama"
	CategoryHorror         Category = "Horror"
	CategoryMusical        Category = "Musical"
	CategoryRomance        Category = "Romance"
	CategoryScienceFiction Category = "Science-Fiction"
	CategoryThriller       Category = "Thriller"
	CategoryWestern        Category = "Western"
)

// Categories lists every accepted category. Keep in sync with the oneof tags below.
var Categories = []Category{
	CategoryAction, CategoryAnimation, CategoryComedy, CategoryDrama, CategoryHorror,
	CategoryMusical, CategoryRomance, CategoryScienceFiction, CategoryThriller, CategoryWestern,
}

// Movie is the aggregate root stored in the movies collection.
// Reviews and their comments are embedded and only change through the movie.
type Movie struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Director  string        `json:"director" bson:"director"`
	Category  Category      `json:"category" bson:"category"`
	Year      int           `json:"year" bson:"year"`
	Author    bson.ObjectID `json:"author" bson:"author"`
	Reviews   []Review      `json:"reviews" bson:"reviews"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// FindReview returns a pointer into m.Reviews, or nil.
func (m *Movie) FindReview(id bson.ObjectID) *Review {
	for i := range m.Reviews {
		if m.Reviews[i].ID == id {
			return &m.Reviews[i]
		}
	}
	return nil
}

// Review is embedded in Movie.Reviews in creation order.
type Review struct {
	ID        bson.ObjectID `json:"_id" bson:"_id"`
	Title     string        `json:"title" bson:"title"`
	Text      string        `json:"text" bson:"text"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Author    bson.ObjectID `json:"author" bson:"author"`
	Comments  []Comment     `json:"comments" bson:"comments"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// FindComment returns a pointer into r.Comments, or nil.
func (r *Review) FindComment(id bson.ObjectID) *Comment {
	for i := range r.Comments {
		if r.Comments[i].ID == id {
			return &r.Comments[i]
		}
	}
	return nil
}

// Comment is embedded in Review.Comments in creation order.
type Comment struct {
	ID        bson.ObjectID `json:"_id" bson:"_id"`
	Text      string        `json:"text" bson:"text"`
	Author    bson.ObjectID `json:"author" bson:"author"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// MovieInput is the body of POST /movies.
type MovieInput struct {
	Title    string   `json:"title" validate:"required"`
	Director string   `json:"director" validate:"required"`
	Category Category `json:"category" validate:"required,oneof=Action Animation Comedy Drama Horror Musical Romance Science-Fiction Thriller Western"`
	Year     int      `json:"year" validate:"required,gt=0"`
}

// MovieUpdate is the body of PUT /movies/:movieId. Nil fields are left unchanged.
// The author is immutable and has no field here.
type MovieUpdate struct {
	Title    *string   `json:"title" validate:"omitnil,min=1"`
	Director *string   `json:"director" validate:"omitnil,min=1"`
	Category *Category `json:"category" validate:"omitnil,oneof=Action Animation Comedy Drama Horror Musical Romance Science-Fiction Thriller Western"`
	Year     *int      `json:"year" validate:"omitnil,gt=0"`
}

// ReviewInput is the body of POST /movies/:movieId/reviews.
type ReviewInput struct {
	Title string `json:"title" validate:"required"`
	Text  string `json:"text" validate:"required"`
	Notes string `json:"notes"`
}

// ReviewUpdate is the body of PUT on a review. Nil fields are left unchanged.
type ReviewUpdate struct {
	Title *string `json:"title" validate:"omitnil,min=1"`
	Text  *string `json:"text" validate:"omitnil,min=1"`
	Notes *string `json:"notes"`
}

// CommentInput is the body for creating or updating a comment.
type CommentInput struct {
	Text string `json:"text" validate:"required"`
}
