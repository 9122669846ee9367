package controllers

import (
	"net/http"

	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/services"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-gonic/gin"
)

// CreateMovie stores a movie authored by the caller.
func CreateMovie(movies *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}
		var in models.MovieInput
		if !bindJSON(c, &in) {
			return
		}

		movie, err := movies.Create(c.Request.Context(), userID, in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, movie)
	}
}

// GetMovies lists every movie.
func GetMovies(movies *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := movies.List(c.Request.Context())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetMovie returns one movie with its reviews.
func GetMovie(movies *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		movie, err := movies.Get(c.Request.Context(), c.Param(MovieIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, movie)
	}
}

func UpdateMovie(movies *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}
		var in models.MovieUpdate
		if !bindJSON(c, &in) {
			return
		}

		movie, err := movies.Update(c.Request.Context(), userID, c.Param(MovieIDParam), in)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, movie)
	}
}

// DeleteMovie removes the movie with everything nested in it and returns the removed document.
func DeleteMovie(movies *services.MovieService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actor(c)
		if !ok {
			return
		}

		movie, err := movies.Delete(c.Request.Context(), userID, c.Param(MovieIDParam))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, movie)
	}
}
