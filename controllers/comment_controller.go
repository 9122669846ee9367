package controllers

import (
	"net/http"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/services"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
)

func CreateComment(comments *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}
		var in models.CommentInput
		if !bindJSON(c, &in) {
			return
		}

		comment, err := comments.Create(c.Request.Context(), userID, c.Param(MovieIDParam), c.Param(ReviewIDParam), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

// UpdateComment rewrites the comment text. Only the comment's author may do this.
func UpdateComment(comments *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}
		var in models.CommentInput
		if !bindJSON(c, &in) {
			return
		}

		comment, err := comments.Update(c.Request.Context(), userID,
			c.Param(MovieIDParam), c.Param(ReviewIDParam), c.Param(CommentIDParam), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

func DeleteComment(comments *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}

		err := comments.Delete(c.Request.Context(), userID,
			c.Param(MovieIDParam), c.Param(ReviewIDParam), c.Param(CommentIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
	}
}
