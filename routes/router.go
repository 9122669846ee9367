// Package routes assembles the gin engine.
package routes

import (
	"net/http"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/controllers"
	"github.com/Ram-Jam5/movie-review-back-end/middleware"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/Ram-Jam5/movie-review-back-end/services"
	"github.com/Ram-Jam5/movie-review-back-end/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies are the services the handlers are built from.
type Dependencies struct {
	Movies   *services.MovieService
	Reviews  *services.ReviewService
	Comments *services.CommentService
	Users    *services.UserService
	Tokens   *utils.TokenManager

	Production bool
}

// NewDependencies builds every service over the given stores.
func NewDependencies(movies repository.MovieRepository, users repository.UserRepository, tokens *utils.TokenManager, hashCost int) Dependencies {
	return Dependencies{
		Movies:   services.NewMovieService(movies, users),
		Reviews:  services.NewReviewService(movies, users),
		Comments: services.NewCommentService(movies, users),
		Users:    services.NewUserService(users, movies, hashCost),
		Tokens:   tokens,
	}
}

func (d Dependencies) auth() controllers.Auth {
	return controllers.Auth{Users: d.Users, Tokens: d.Tokens, Production: d.Production}
}

// Options configure the engine-wide middleware.
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

func NewRouter(deps Dependencies, opts Options) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestLogger(opts.Logger), middleware.Recovery())
	if opts.RequestTimeout > 0 {
		router.Use(middleware.Timeout(opts.RequestTimeout))
	}

	SetupUnprotectedRoutes(router, deps)
	SetupProtectedRoutes(router, deps)
	return router
}
