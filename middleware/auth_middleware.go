package middleware

import (
	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// AuthMiddleware verifies the access token (bearer header or cookie) and records the caller's user id.
// Requests without a valid token stop here with 401.
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.GetAccessToken(c)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		claims, err := tokens.ValidateToken(token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.RespondError(c, apperr.Unauthorized("invalid token subject"))
			return
		}
		utils.SetUserID(c, userID)

		logger := zerolog.Ctx(c.Request.Context()).With().Str("user_id", claims.UserID).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

		c.Next()
	}
}
