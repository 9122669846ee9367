package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username  string        `json:"username" bson:"username" validate:"required,min=2,max=50"`
	Email     string        `json:"email" bson:"email" validate:"required,email"`
	Password  string        `json:"-" bson:"password"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Public strips credentials for responses.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserResponse is how a user appears in API responses, including as an expanded author.
type UserResponse struct {
	ID        bson.ObjectID `json:"_id"`
	Username  string        `json:"username,omitempty"`
	Email     string        `json:"email,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitzero"`
	UpdatedAt time.Time     `json:"updatedAt,omitzero"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the tokens in the body for clients that cannot use cookies.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// UserReview is one review authored by a user, projected out of its movie.
type UserReview struct {
	MovieID    bson.ObjectID `json:"movieId" bson:"movieId"`
	MovieTitle string        `json:"movieTitle" bson:"movieTitle"`
	Review     Review        `json:"review" bson:"review"`
}

// UserComment is one comment authored by a user, projected out of its movie.
type UserComment struct {
	MovieID  bson.ObjectID `json:"movieId" bson:"movieId"`
	ReviewID bson.ObjectID `json:"reviewId" bson:"reviewId"`
	Comment  Comment       `json:"comment" bson:"comment"`
}
