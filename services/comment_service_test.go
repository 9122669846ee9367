package services

import (
	"context"
	"testing"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCommentService_Lifecycle(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	m := f.createMovie(t, f.alice.ID, inception())
	r := f.createReview(t, f.alice.ID, m.ID)
	mid, rid := m.ID.Hex(), r.ID.Hex()

	c, err := f.comments.Create(ctx, f.bob.ID, mid, rid, models.CommentInput{Text: "Spinning top fell"})
	require.NoError(t, err)
	assert.Equal(t, "bob", c.Author.Username)

	review, err := f.reviews.Get(ctx, mid, rid)
	require.NoError(t, err)
	require.Len(t, review.Comments, 1)
	assert.Equal(t, c.ID, review.Comments[0].ID)

	mine, err := f.users.Comments(ctx, f.bob.ID.Hex())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, r.ID, mine[0].ReviewID)

	t.Run("update requires ownership", func(t *testing.T) {
		_, err := f.comments.Update(ctx, f.alice.ID, mid, rid, c.ID.Hex(), models.CommentInput{Text: "no it didn't"})
		assertAppErr(t, err, apperr.ErrForbidden)

		review, err := f.reviews.Get(ctx, mid, rid)
		require.NoError(t, err)
		assert.Equal(t, "Spinning top fell", review.Comments[0].Text)
	})

	t.Run("owner updates text", func(t *testing.T) {
		got, err := f.comments.Update(ctx, f.bob.ID, mid, rid, c.ID.Hex(), models.CommentInput{Text: "It wobbled"})
		require.NoError(t, err)
		assert.Equal(t, "It wobbled", got.Text)

		_, err = f.comments.Update(ctx, f.bob.ID, mid, rid, c.ID.Hex(), models.CommentInput{})
		assertAppErr(t, err, apperr.ErrValidation)
	})

	t.Run("delete requires ownership", func(t *testing.T) {
		err := f.comments.Delete(ctx, f.alice.ID, mid, rid, c.ID.Hex())
		assertAppErr(t, err, apperr.ErrForbidden)

		require.NoError(t, f.comments.Delete(ctx, f.bob.ID, mid, rid, c.ID.Hex()))

		mine, err := f.users.Comments(ctx, f.bob.ID.Hex())
		require.NoError(t, err)
		assert.Empty(t, mine)

		err = f.comments.Delete(ctx, f.bob.ID, mid, rid, c.ID.Hex())
		assertAppErr(t, err, apperr.ErrNotFound)
	})
}

func TestCommentService_MissingParents(t *testing.T) {
	f := newFixtures(t)
	ctx := context.Background()
	m := f.createMovie(t, f.alice.ID, inception())

	_, err := f.comments.Create(ctx, f.bob.ID, m.ID.Hex(), bson.NewObjectID().Hex(), models.CommentInput{Text: "hi"})
	assertAppErr(t, err, apperr.ErrNotFound)

	_, err = f.comments.Create(ctx, f.bob.ID, bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), models.CommentInput{Text: "hi"})
	assertAppErr(t, err, apperr.ErrNotFound)

	_, err = f.comments.Update(ctx, f.bob.ID, m.ID.Hex(), bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), models.CommentInput{Text: "hi"})
	assertAppErr(t, err, apperr.ErrNotFound)

	_, err = f.comments.Create(ctx, f.bob.ID, m.ID.Hex(), "bad", models.CommentInput{Text: "hi"})
	assertAppErr(t, err, apperr.ErrValidation)
}
