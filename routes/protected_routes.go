package routes

import (
	"github.com/Ram-Jam5/movie-review-back-end/controllers"
	"github.com/Ram-Jam5/movie-review-back-end/middleware"
	"github.com/gin-gonic/gin"
)

const (
	moviePath    = "/movies/:" + controllers.MovieIDParam
	reviewsPath  = moviePath + "/reviews"
	reviewPath   = reviewsPath + "/:" + controllers.ReviewIDParam
	commentsPath = reviewPath + "/comments"
	commentPath  = commentsPath + "/:" + controllers.CommentIDParam
	userPath     = "/users/:" + controllers.UserIDParam
)

func SetupProtectedRoutes(router gin.IRouter, deps Dependencies) {
	protected := router.Group("/", middleware.AuthMiddleware(deps.Tokens))

	protected.POST("/movies", controllers.CreateMovie(deps.Movies))
	protected.GET("/movies", controllers.GetMovies(deps.Movies))
	protected.GET(moviePath, controllers.GetMovie(deps.Movies))
	protected.PUT(moviePath, controllers.UpdateMovie(deps.Movies))
	protected.DELETE(moviePath, controllers.DeleteMovie(deps.Movies))

	protected.POST(reviewsPath, controllers.CreateReview(deps.Reviews))
	protected.GET(reviewsPath, controllers.GetReviews(deps.Reviews))
	protected.GET(reviewPath, controllers.GetReview(deps.Reviews))
	protected.PUT(reviewPath, controllers.UpdateReview(deps.Reviews))
	protected.DELETE(reviewPath, controllers.DeleteReview(deps.Reviews))

	protected.POST(commentsPath, controllers.CreateComment(deps.Comments))
	protected.PUT(commentPath, controllers.UpdateComment(deps.Comments))
	protected.DELETE(commentPath, controllers.DeleteComment(deps.Comments))

	protected.GET("/users/me", controllers.GetCurrentUser(deps.Users))
	protected.GET(userPath+"/reviews", controllers.GetUserReviews(deps.Users))
	protected.GET(userPath+"/comments", controllers.GetUserComments(deps.Users))
}
