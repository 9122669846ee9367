package services

import (
	"context"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = apperr.Unauthorized("invalid email or password")

type UserService struct {
	users    repository.UserRepository
	movies   repository.MovieRepository
	hashCost int
	now      Clock
}

// NewUserService builds the service; hashCost is the bcrypt cost (bcrypt.DefaultCost in production).
func NewUserService(users repository.UserRepository, movies repository.MovieRepository, hashCost int) *UserService {
	return &UserService{users: users, movies: movies, hashCost: hashCost, now: systemClock}
}

func (s *UserService) Register(ctx context.Context, in models.RegisterRequest) (*models.UserResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	now := s.now()
	user := &models.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("user_id", user.ID.Hex()).Msg("user registered")
	resp := user.Public()
	return &resp, nil
}

// Authenticate checks the credentials. Unknown email and wrong password are indistinguishable.
func (s *UserService) Authenticate(ctx context.Context, in models.UserLogin) (*models.User, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return nil, errInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id bson.ObjectID) (*models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := user.Public()
	return &resp, nil
}

// Reviews is the user's review list, computed from the movies so it cannot drift from them.
func (s *UserService) Reviews(ctx context.Context, userID string) ([]models.UserReview, error) {
	id, err := s.existing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.movies.ReviewsByAuthor(ctx, id)
}

// Comments is the user's comment list, computed from the movies.
func (s *UserService) Comments(ctx context.Context, userID string) ([]models.UserComment, error) {
	id, err := s.existing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.movies.CommentsByAuthor(ctx, id)
}

func (s *UserService) existing(ctx context.Context, userID string) (bson.ObjectID, error) {
	id, err := parseID("user", userID)
	if err != nil {
		return bson.NilObjectID, err
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return bson.NilObjectID, err
	}
	return id, nil
}
