package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Both implementations must pass the same behaviour checks.
func runMovieRepositoryContract(t *testing.T, newRepo func(t *testing.T) MovieRepository) {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	newMovie := func(title string, created time.Time) *models.Movie {
		return &models.Movie{
			Title:     title,
			Director:  "Nolan",
			Category:  models.CategoryScienceFiction,
			Year:      2010,
			Author:    bson.NewObjectID(),
			Reviews:   []models.Review{},
			CreatedAt: created,
			UpdatedAt: created,
		}
	}
	newReview := func(author bson.ObjectID, at time.Time) *models.Review {
		return &models.Review{
			ID: bson.NewObjectID(), Title: "Great", Text: "Loved it",
			Author: author, Comments: []models.Comment{}, CreatedAt: at, UpdatedAt: at,
		}
	}

	t.Run("insert rejects duplicate title", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, newMovie("Inception", base)))

		err := repo.Insert(ctx, newMovie("Inception", base))
		assert.True(t, errors.Is(err, apperr.ErrConflict))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("list is newest first", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, newMovie("Old", base)))
		require.NoError(t, repo.Insert(ctx, newMovie("New", base.Add(time.Hour))))

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "New", all[0].Title)
		assert.Equal(t, "Old", all[1].Title)
	})

	t.Run("update merges only provided fields", func(t *testing.T) {
		repo := newRepo(t)
		m := newMovie("Memento", base)
		require.NoError(t, repo.Insert(ctx, m))

		year := 2000
		got, err := repo.Update(ctx, m.ID, models.MovieUpdate{Year: &year}, base.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 2000, got.Year)
		assert.Equal(t, "Memento", got.Title)
		assert.Equal(t, m.Author, got.Author)
		assert.True(t, got.UpdatedAt.Equal(base.Add(time.Minute)))
	})

	t.Run("update to taken title conflicts", func(t *testing.T) {
		repo := newRepo(t)
		a, b := newMovie("A", base), newMovie("B", base)
		require.NoError(t, repo.Insert(ctx, a))
		require.NoError(t, repo.Insert(ctx, b))

		title := "A"
		_, err := repo.Update(ctx, b.ID, models.MovieUpdate{Title: &title}, base)
		assert.True(t, errors.Is(err, apperr.ErrConflict))
	})

	t.Run("missing movie is not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.FindByID(ctx, bson.NewObjectID())
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
		_, err = repo.Delete(ctx, bson.NewObjectID())
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
		err = repo.PushReview(ctx, bson.NewObjectID(), newReview(bson.NewObjectID(), base))
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("review lifecycle", func(t *testing.T) {
		repo := newRepo(t)
		m := newMovie("Tenet", base)
		require.NoError(t, repo.Insert(ctx, m))

		author := bson.NewObjectID()
		first, second := newReview(author, base.Add(time.Minute)), newReview(author, base.Add(2*time.Minute))
		require.NoError(t, repo.PushReview(ctx, m.ID, first))
		require.NoError(t, repo.PushReview(ctx, m.ID, second))

		stored, err := repo.FindByID(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, stored.Reviews, 2)
		assert.Equal(t, first.ID, stored.Reviews[0].ID)

		notes := "rewatch"
		updated, err := repo.UpdateReview(ctx, m.ID, first.ID, models.ReviewUpdate{Notes: &notes}, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "rewatch", updated.Notes)
		assert.Equal(t, "Great", updated.Title)

		require.NoError(t, repo.PullReview(ctx, m.ID, first.ID, base.Add(time.Hour)))
		stored, err = repo.FindByID(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, stored.Reviews, 1)
		assert.Equal(t, second.ID, stored.Reviews[0].ID)

		err = repo.PullReview(ctx, m.ID, first.ID, base)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
		_, err = repo.UpdateReview(ctx, m.ID, first.ID, models.ReviewUpdate{}, base)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("comment lifecycle", func(t *testing.T) {
		repo := newRepo(t)
		m := newMovie("Dunkirk", base)
		require.NoError(t, repo.Insert(ctx, m))
		review := newReview(bson.NewObjectID(), base)
		require.NoError(t, repo.PushReview(ctx, m.ID, review))

		author := bson.NewObjectID()
		c := &models.Comment{ID: bson.NewObjectID(), Text: "agreed", Author: author, CreatedAt: base, UpdatedAt: base}
		require.NoError(t, repo.PushComment(ctx, m.ID, review.ID, c))

		got, err := repo.UpdateComment(ctx, m.ID, review.ID, c.ID, "strongly agreed", base.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "strongly agreed", got.Text)

		comments, err := repo.CommentsByAuthor(ctx, author)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, review.ID, comments[0].ReviewID)
		assert.Equal(t, "strongly agreed", comments[0].Comment.Text)

		require.NoError(t, repo.PullComment(ctx, m.ID, review.ID, c.ID, base.Add(time.Hour)))
		stored, err := repo.FindByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, stored.Reviews[0].Comments)

		err = repo.PullComment(ctx, m.ID, review.ID, c.ID, base)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
		err = repo.PushComment(ctx, m.ID, bson.NewObjectID(), c)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("reviews by author spans movies", func(t *testing.T) {
		repo := newRepo(t)
		a, b := newMovie("Alien", base), newMovie("Aliens", base)
		require.NoError(t, repo.Insert(ctx, a))
		require.NoError(t, repo.Insert(ctx, b))

		author := bson.NewObjectID()
		require.NoError(t, repo.PushReview(ctx, a.ID, newReview(author, base)))
		require.NoError(t, repo.PushReview(ctx, b.ID, newReview(author, base.Add(time.Minute))))
		require.NoError(t, repo.PushReview(ctx, b.ID, newReview(bson.NewObjectID(), base)))

		got, err := repo.ReviewsByAuthor(ctx, author)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Aliens", got[0].MovieTitle)
		assert.Equal(t, a.ID, got[1].MovieID)

		none, err := repo.ReviewsByAuthor(ctx, bson.NewObjectID())
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete returns removed document", func(t *testing.T) {
		repo := newRepo(t)
		m := newMovie("Interstellar", base)
		require.NoError(t, repo.Insert(ctx, m))
		require.NoError(t, repo.PushReview(ctx, m.ID, newReview(bson.NewObjectID(), base)))

		removed, err := repo.Delete(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "Interstellar", removed.Title)
		assert.Len(t, removed.Reviews, 1)

		_, err = repo.FindByID(ctx, m.ID)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}

func runUserRepositoryContract(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	ctx := context.Background()

	t.Run("email is unique and case-insensitive", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Insert(ctx, &models.User{Username: "ann", Email: "Ann@Example.com"}))

		err := repo.Insert(ctx, &models.User{Username: "ann2", Email: "ann@example.com"})
		assert.True(t, errors.Is(err, apperr.ErrConflict))

		u, err := repo.FindByEmail(ctx, "ANN@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ann", u.Username)
	})

	t.Run("find by ids skips unknown", func(t *testing.T) {
		repo := newRepo(t)
		u := &models.User{Username: "bob", Email: "bob@example.com"}
		require.NoError(t, repo.Insert(ctx, u))

		got, err := repo.FindByIDs(ctx, []bson.ObjectID{u.ID, bson.NewObjectID()})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, u.ID, got[0].ID)

		_, err = repo.FindByID(ctx, bson.NewObjectID())
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})
}

func TestMemoryMovieRepository(t *testing.T) {
	runMovieRepositoryContract(t, func(*testing.T) MovieRepository { return NewMemoryMovieRepository() })
}

func TestMemoryUserRepository(t *testing.T) {
	runUserRepositoryContract(t, func(*testing.T) UserRepository { return NewMemoryUserRepository() })
}

func TestMemoryMovieRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()
	m := &models.Movie{Title: "Up", Reviews: []models.Review{}}
	require.NoError(t, repo.Insert(ctx, m))

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	got.Title = "Down"
	got.Reviews = append(got.Reviews, models.Review{})

	again, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Up", again.Title)
	assert.Empty(t, again.Reviews)
}
