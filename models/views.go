package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuthorFunc resolves an author id to its expanded form.
type AuthorFunc func(bson.ObjectID) UserResponse

// MovieView is a Movie with every author expanded.
type MovieView struct {
	ID        bson.ObjectID `json:"_id"`
	Title     string        `json:"title"`
	Director  string        `json:"director"`
	Category  Category      `json:"category"`
	Year      int           `json:"year"`
	Author    UserResponse  `json:"author"`
	Reviews   []ReviewView  `json:"reviews"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type ReviewView struct {
	ID        bson.ObjectID `json:"_id"`
	Title     string        `json:"title"`
	Text      string        `json:"text"`
	Notes     string        `json:"notes,omitempty"`
	Author    UserResponse  `json:"author"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CommentView struct {
	ID        bson.ObjectID `json:"_id"`
	Text      string        `json:"text"`
	Author    UserResponse  `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func NewMovieView(m *Movie, author AuthorFunc) MovieView {
	reviews := make([]ReviewView, 0, len(m.Reviews))
	for i := range m.Reviews {
		reviews = append(reviews, NewReviewView(&m.Reviews[i], author))
	}
	return MovieView{
		ID:        m.ID,
		Title:     m.Title,
		Director:  m.Director,
		Category:  m.Category,
		Year:      m.Year,
		Author:    author(m.Author),
		Reviews:   reviews,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewReviewView(r *Review, author AuthorFunc) ReviewView {
	comments := make([]CommentView, 0, len(r.Comments))
	for i := range r.Comments {
		comments = append(comments, NewCommentView(&r.Comments[i], author))
	}
	return ReviewView{
		ID:        r.ID,
		Title:     r.Title,
		Text:      r.Text,
		Notes:     r.Notes,
		Author:    author(r.Author),
		Comments:  comments,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewCommentView(c *Comment, author AuthorFunc) CommentView {
	return CommentView{
		ID:        c.ID,
		Text:      c.Text,
		Author:    author(c.Author),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// AuthorIDs collects every distinct author referenced by the movies, their reviews and comments.
func AuthorIDs(movies ...*Movie) []bson.ObjectID {
	seen := make(map[bson.ObjectID]struct{})
	var ids []bson.ObjectID
	add := func(id bson.ObjectID) {
		if id.IsZero() {
			return
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, m := range movies {
		add(m.Author)
		for _, r := range m.Reviews {
			add(r.Author)
			for _, c := range r.Comments {
				add(c.Author)
			}
		}
	}
	return ids
}
