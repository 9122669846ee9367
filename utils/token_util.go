package utils

import (
	"strings"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	issuer = "MovieReviews"

	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour

	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	userIDKey = "userID"
)

// SignedDetails are the claims carried by access and refresh tokens.
type SignedDetails struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	UserID   string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies tokens. Access and refresh tokens use separate keys.
type TokenManager struct {
	secret        []byte
	refreshSecret []byte
	now           func() time.Time
}

func NewTokenManager(secret, refreshSecret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), refreshSecret: []byte(refreshSecret), now: time.Now}
}

// GenerateAllTokens issues an access token and a refresh token for the user.
func (m *TokenManager) GenerateAllTokens(email, username, userID string) (signedToken, signedRefreshToken string, err error) {
	signedToken, err = m.sign(email, username, userID, AccessTokenTTL, m.secret)
	if err != nil {
		return "", "", err
	}
	signedRefreshToken, err = m.sign(email, username, userID, RefreshTokenTTL, m.refreshSecret)
	if err != nil {
		return "", "", err
	}
	return signedToken, signedRefreshToken, nil
}

func (m *TokenManager) sign(email, username, userID string, ttl time.Duration, key []byte) (string, error) {
	now := m.now()
	claims := &SignedDetails{
		Email:    email,
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	return signed, errors.Wrap(err, "sign token")
}

func (m *TokenManager) ValidateToken(tokenString string) (*SignedDetails, error) {
	return m.parse(tokenString, m.secret)
}

func (m *TokenManager) ValidateRefreshToken(tokenString string) (*SignedDetails, error) {
	return m.parse(tokenString, m.refreshSecret)
}

func (m *TokenManager) parse(tokenString string, key []byte) (*SignedDetails, error) {
	claims := &SignedDetails{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Only HMAC signatures are accepted.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return key, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, apperr.Unauthorized(err.Error())
	}
	if _, err := bson.ObjectIDFromHex(claims.UserID); err != nil {
		return nil, apperr.Unauthorized("token subject is not a user id")
	}
	return claims, nil
}

// GetAccessToken reads the bearer token from the Authorization header, falling back to the access cookie.
func GetAccessToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", apperr.Unauthorized("malformed authorization header")
		}
		return strings.TrimSpace(token), nil
	}
	token, err := c.Cookie(AccessCookie)
	if err != nil || token == "" {
		return "", apperr.Unauthorized("no token found in authorization header or cookie")
	}
	return token, nil
}

// SetUserID records the verified identity on the request.
func SetUserID(c *gin.Context, id bson.ObjectID) {
	c.Set(userIDKey, id)
}

// GetUserIdFromContext returns the identity set by the auth middleware.
func GetUserIdFromContext(c *gin.Context) (bson.ObjectID, error) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return bson.NilObjectID, apperr.Unauthorized("user ID not found in context")
	}
	id, ok := v.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, apperr.Unauthorized("user ID has unexpected type")
	}
	return id, nil
}
