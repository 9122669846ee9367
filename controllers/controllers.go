// Package controllers adapts HTTP requests to the services layer.
package controllers

import (
	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Path parameter names shared with the route table.
const (
	MovieIDParam   = "movieId"
	ReviewIDParam  = "reviewId"
	CommentIDParam = "commentId"
	UserIDParam    = "userId"
)

// bindJSON decodes the body into dst, rendering a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.RespondError(c, apperr.Validation("invalid JSON body: "+err.Error()))
		return false
	}
	return true
}

// actor returns the authenticated caller, rendering a 401 when it is missing.
func actor(c *gin.Context) (bson.ObjectID, bool) {
	id, err := utils.GetUserIdFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return bson.NilObjectID, false
	}
	return id, true
}
