package controllers

import (
	"net/http"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/services"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
)

func CreateReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}
		var in models.ReviewInput
		if !bindJSON(c, &in) {
			return
		}

		review, err := reviews.Create(c.Request.Context(), userID, c.Param(MovieIDParam), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

func GetReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reviews.List(c.Request.Context(), c.Param(MovieIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		review, err := reviews.Get(c.Request.Context(), c.Param(MovieIDParam), c.Param(ReviewIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func UpdateReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}
		var in models.ReviewUpdate
		if !bindJSON(c, &in) {
			return
		}

		review, err := reviews.Update(c.Request.Context(), userID, c.Param(MovieIDParam), c.Param(ReviewIDParam), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

func DeleteReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}

		if err := reviews.Delete(c.Request.Context(), userID, c.Param(MovieIDParam), c.Param(ReviewIDParam)); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
