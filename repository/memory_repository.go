package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryMovieRepository keeps movies in process. It backs STORE_DRIVER=memory and the tests,
// and mirrors the MongoDB repository's semantics including the unique title.
type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[bson.ObjectID]*models.Movie
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{movies: make(map[bson.ObjectID]*models.Movie)}
}

func (r *MemoryMovieRepository) Insert(_ context.Context, movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.titleTaken(movie.Title, bson.NilObjectID) {
		return errTitleTaken
	}
	if movie.ID.IsZero() {
		movie.ID = bson.NewObjectID()
	}
	r.movies[movie.ID] = cloneMovie(movie)
	return nil
}

func (r *MemoryMovieRepository) List(_ context.Context) ([]models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, *cloneMovie(m))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.Hex() > out[j].ID.Hex()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryMovieRepository) FindByID(_ context.Context, id bson.ObjectID) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, errMovieNotFound
	}
	return cloneMovie(m), nil
}

func (r *MemoryMovieRepository) Update(_ context.Context, id bson.ObjectID, patch models.MovieUpdate, at time.Time) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, errMovieNotFound
	}
	if patch.Title != nil && r.titleTaken(*patch.Title, id) {
		return nil, errTitleTaken
	}
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Director != nil {
		m.Director = *patch.Director
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Year != nil {
		m.Year = *patch.Year
	}
	m.UpdatedAt = at
	return cloneMovie(m), nil
}

func (r *MemoryMovieRepository) Delete(_ context.Context, id bson.ObjectID) (*models.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.movies[id]
	if !ok {
		return nil, errMovieNotFound
	}
	delete(r.movies, id)
	return m, nil
}

func (r *MemoryMovieRepository) PushReview(_ context.Context, movieID bson.ObjectID, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.movies[movieID]
	if !ok {
		return errMovieNotFound
	}
	m.Reviews = append(m.Reviews, cloneReview(review))
	m.UpdatedAt = review.CreatedAt
	return nil
}

func (r *MemoryMovieRepository) UpdateReview(_ context.Context, movieID, reviewID bson.ObjectID, patch models.ReviewUpdate, at time.Time) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, review, err := r.review(movieID, reviewID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		review.Title = *patch.Title
	}
	if patch.Text != nil {
		review.Text = *patch.Text
	}
	if patch.Notes != nil {
		review.Notes = *patch.Notes
	}
	review.UpdatedAt = at
	m.UpdatedAt = at

	out := cloneReview(review)
	return &out, nil
}

func (r *MemoryMovieRepository) PullReview(_ context.Context, movieID, reviewID bson.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, _, err := r.review(movieID, reviewID)
	if err != nil {
		return err
	}
	kept := m.Reviews[:0]
	for _, rv := range m.Reviews {
		if rv.ID != reviewID {
			kept = append(kept, rv)
		}
	}
	m.Reviews = kept
	m.UpdatedAt = at
	return nil
}

func (r *MemoryMovieRepository) PushComment(_ context.Context, movieID, reviewID bson.ObjectID, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, review, err := r.review(movieID, reviewID)
	if err != nil {
		return err
	}
	review.Comments = append(review.Comments, *comment)
	m.UpdatedAt = comment.CreatedAt
	return nil
}

func (r *MemoryMovieRepository) UpdateComment(_ context.Context, movieID, reviewID, commentID bson.ObjectID, text string, at time.Time) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, review, err := r.review(movieID, reviewID)
	if err != nil {
		return nil, err
	}
	comment := review.FindComment(commentID)
	if comment == nil {
		return nil, errCommentNotFound
	}
	comment.Text = text
	comment.UpdatedAt = at
	m.UpdatedAt = at

	out := *comment
	return &out, nil
}

func (r *MemoryMovieRepository) PullComment(_ context.Context, movieID, reviewID, commentID bson.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, review, err := r.review(movieID, reviewID)
	if err != nil {
		return err
	}
	if review.FindComment(commentID) == nil {
		return errCommentNotFound
	}
	kept := review.Comments[:0]
	for _, c := range review.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	review.Comments = kept
	m.UpdatedAt = at
	return nil
}

func (r *MemoryMovieRepository) ReviewsByAuthor(_ context.Context, userID bson.ObjectID) ([]models.UserReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.UserReview{}
	for _, m := range r.movies {
		for _, rv := range m.Reviews {
			if rv.Author == userID {
				out = append(out, models.UserReview{MovieID: m.ID, MovieTitle: m.Title, Review: cloneReview(&rv)})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Review.CreatedAt.After(out[j].Review.CreatedAt)
	})
	return out, nil
}

func (r *MemoryMovieRepository) CommentsByAuthor(_ context.Context, userID bson.ObjectID) ([]models.UserComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.UserComment{}
	for _, m := range r.movies {
		for _, rv := range m.Reviews {
			for _, c := range rv.Comments {
				if c.Author == userID {
					out = append(out, models.UserComment{MovieID: m.ID, ReviewID: rv.ID, Comment: c})
				}
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Comment.CreatedAt.After(out[j].Comment.CreatedAt)
	})
	return out, nil
}

// review resolves a stored (not cloned) review. Callers hold the lock.
func (r *MemoryMovieRepository) review(movieID, reviewID bson.ObjectID) (*models.Movie, *models.Review, error) {
	m, ok := r.movies[movieID]
	if !ok {
		return nil, nil, errMovieNotFound
	}
	review := m.FindReview(reviewID)
	if review == nil {
		return nil, nil, errReviewNotFound
	}
	return m, review, nil
}

func (r *MemoryMovieRepository) titleTaken(title string, except bson.ObjectID) bool {
	for id, m := range r.movies {
		if id != except && m.Title == title {
			return true
		}
	}
	return false
}

func cloneMovie(m *models.Movie) *models.Movie {
	cp := *m
	cp.Reviews = make([]models.Review, 0, len(m.Reviews))
	for i := range m.Reviews {
		cp.Reviews = append(cp.Reviews, cloneReview(&m.Reviews[i]))
	}
	return &cp
}

func cloneReview(r *models.Review) models.Review {
	cp := *r
	cp.Comments = append(make([]models.Comment, 0, len(r.Comments)), r.Comments...)
	return cp
}

// MemoryUserRepository keeps users in process; emails are unique case-insensitively.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[bson.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[bson.ObjectID]models.User)}
}

func (r *MemoryUserRepository) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return errEmailTaken
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errUserNotFound
}

func (r *MemoryUserRepository) FindByIDs(_ context.Context, ids []bson.ObjectID) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}
