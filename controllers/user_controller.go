package controllers

import (
	"net/http"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/services"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Auth bundles what the session handlers need.
type Auth struct {
	Users  *services.UserService
	Tokens *utils.TokenManager
	// Production cookies are Secure with SameSite=None so a cross-site frontend can send them.
	Production bool
}

func (a Auth) setCookie(c *gin.Context, name, value string, maxAge int) {
	sameSite, secure := http.SameSiteLaxMode, false
	if a.Production {
		sameSite, secure = http.SameSiteNoneMode, true
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	})
}

// issue signs a fresh token pair, sets both cookies and returns the pair for the body.
func (a Auth) issue(c *gin.Context, user models.UserResponse) (models.LoginResponse, error) {
	token, refreshToken, err := a.Tokens.GenerateAllTokens(user.Email, user.Username, user.ID.Hex())
	if err != nil {
		return models.LoginResponse{}, err
	}
	a.setCookie(c, utils.AccessCookie, token, int(utils.AccessTokenTTL.Seconds()))
	a.setCookie(c, utils.RefreshCookie, refreshToken, int(utils.RefreshTokenTTL.Seconds()))
	return models.LoginResponse{User: user, Token: token, RefreshToken: refreshToken}, nil
}

func RegisterUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.RegisterRequest
		if !bindJSON(c, &in) {
			return
		}

		user, err := users.Register(c.Request.Context(), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// LoginUser checks credentials and issues tokens both as HttpOnly cookies and in the body.
func LoginUser(auth Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.UserLogin
		if !bindJSON(c, &in) {
			return
		}

		user, err := auth.Users.Authenticate(c.Request.Context(), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		resp, err := auth.issue(c, user.Public())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		zerolog.Ctx(c.Request.Context()).Info().Str("user_id", user.ID.Hex()).Msg("user logged in")
		c.JSON(http.StatusOK, resp)
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenHandler exchanges a refresh token, from the cookie or the body, for a new pair.
func RefreshTokenHandler(auth Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		refreshToken, err := c.Cookie(utils.RefreshCookie)
		if err != nil || refreshToken == "" {
			var body refreshRequest
			if c.Request.ContentLength != 0 && c.ShouldBindJSON(&body) == nil {
				refreshToken = body.RefreshToken
			}
		}
		if refreshToken == "" {
			utils.RespondError(c, apperr.Unauthorized("no refresh token found in cookie or body"))
			return
		}

		claims, err := auth.Tokens.ValidateRefreshToken(refreshToken)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.RespondError(c, apperr.Unauthorized("invalid token subject"))
			return
		}

		user, err := auth.Users.Get(c.Request.Context(), userID)
		if errors.Is(err, apperr.ErrNotFound) {
			utils.RespondError(c, apperr.Unauthorized("user no longer exists"))
			return
		}
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		resp, err := auth.issue(c, *user)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler expires both cookies. Tokens are stateless, so nothing is stored server side.
func LogoutHandler(auth Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.setCookie(c, utils.AccessCookie, "", -1)
		auth.setCookie(c, utils.RefreshCookie, "", -1)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GetCurrentUser returns the authenticated caller.
func GetCurrentUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GetUserReviews lists every review the user wrote, with the movie it belongs to.
func GetUserReviews(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := users.Reviews(c.Request.Context(), c.Param(UserIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

func GetUserComments(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := users.Comments(c.Request.Context(), c.Param(UserIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}
