package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret")
	uid := bson.NewObjectID().Hex()

	access, refresh, err := m.GenerateAllTokens("a@example.com", "ann", uid)
	require.NoError(t, err)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, "ann", claims.Username)

	claims, err = m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)

	// Keys are not interchangeable.
	_, err = m.ValidateToken(refresh)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
	_, err = m.ValidateRefreshToken(access)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("s", "r")
	issued := time.Now().Add(-48 * time.Hour)
	m.now = func() time.Time { return issued }
	access, _, err := m.GenerateAllTokens("a@example.com", "ann", bson.NewObjectID().Hex())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(access)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestTokenManager_RejectsForeignSignatureAndBadSubject(t *testing.T) {
	other := NewTokenManager("other", "other-r")
	access, _, err := other.GenerateAllTokens("a@example.com", "ann", bson.NewObjectID().Hex())
	require.NoError(t, err)

	m := NewTokenManager("s", "r")
	_, err = m.ValidateToken(access)
	assert.Error(t, err)

	access, _, err = m.GenerateAllTokens("a@example.com", "ann", "not-hex")
	require.NoError(t, err)
	_, err = m.ValidateToken(access)
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	_, err = m.ValidateToken("garbage")
	assert.Error(t, err)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(setup func(r *http.Request)) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		setup(r)
		c.Request = r
		return c
	}

	tok, err := GetAccessToken(newCtx(func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") }))
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	tok, err = GetAccessToken(newCtx(func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AccessCookie, Value: "from-cookie"}) }))
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", tok)

	_, err = GetAccessToken(newCtx(func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }))
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))

	_, err = GetAccessToken(newCtx(func(*http.Request) {}))
	assert.True(t, errors.Is(err, apperr.ErrUnauthorized))
}

func TestUserIDContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetUserIdFromContext(c)
	assert.Error(t, err)

	id := bson.NewObjectID()
	SetUserID(c, id)
	got, err := GetUserIdFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
