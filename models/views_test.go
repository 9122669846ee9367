package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAuthorIDs_Distinct(t *testing.T) {
	a, b, c := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()
	m := &Movie{
		Author: a,
		Reviews: []Review{
			{Author: b, Comments: []Comment{{Author: a}, {Author: c}}},
			{Author: b},
		},
	}
	assert.Equal(t, []bson.ObjectID{a, b, c}, AuthorIDs(m))
}

func TestNewMovieView_ExpandsAuthors(t *testing.T) {
	owner := bson.NewObjectID()
	m := &Movie{
		ID:       bson.NewObjectID(),
		Title:    "Heat",
		Author:   owner,
		Reviews:  []Review{{ID: bson.NewObjectID(), Author: owner, Comments: []Comment{{Author: owner}}}},
		Category: CategoryThriller,
	}
	view := NewMovieView(m, func(id bson.ObjectID) UserResponse {
		return UserResponse{ID: id, Username: "mann"}
	})

	assert.Equal(t, "mann", view.Author.Username)
	require.Len(t, view.Reviews, 1)
	assert.Equal(t, owner, view.Reviews[0].Author.ID)
	require.Len(t, view.Reviews[0].Comments, 1)
	assert.Equal(t, "mann", view.Reviews[0].Comments[0].Author.Username)
}

func TestFindReviewAndComment(t *testing.T) {
	rid, cid := bson.NewObjectID(), bson.NewObjectID()
	m := &Movie{Reviews: []Review{{ID: rid, Comments: []Comment{{ID: cid, Text: "hi"}}}}}

	r := m.FindReview(rid)
	require.NotNil(t, r)
	c := r.FindComment(cid)
	require.NotNil(t, c)
	c.Text = "edited"
	assert.Equal(t, "edited", m.Reviews[0].Comments[0].Text)

	assert.Nil(t, m.FindReview(bson.NewObjectID()))
	assert.Nil(t, r.FindComment(bson.NewObjectID()))
}
