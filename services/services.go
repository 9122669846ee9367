// Package services holds the movie, review, comment and user operations behind the HTTP handlers.
package services

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/Ram-Jam5/movie-review-back-end/models"
	"github.com/Ram-Jam5/movie-review-back-end/repository"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report payload field names as clients send them.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate payload")
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+": "+fe.Tag()+"="+fe.Param())
		} else {
			parts = append(parts, fe.Field()+": "+fe.Tag())
		}
	}
	return apperr.Validation(strings.Join(parts, "; "))
}

// authorize is the single ownership rule for every mutation: only the author may change a resource.
func authorize(owner, actor bson.ObjectID) error {
	if owner.IsZero() || owner != actor {
		return apperr.Forbidden()
	}
	return nil
}

func parseID(kind, raw string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.NilObjectID, apperr.Validation("invalid " + kind + " id")
	}
	return id, nil
}

// Clock is swapped in tests.
type Clock func() time.Time

func systemClock() time.Time {
	// Mongo keeps millisecond precision; truncating keeps both stores identical.
	return time.Now().UTC().Truncate(time.Millisecond)
}

// authorResolver expands author ids into public user objects.
type authorResolver struct {
	users repository.UserRepository
}

func (a authorResolver) resolve(ctx context.Context, ids []bson.ObjectID) (models.AuthorFunc, error) {
	users, err := a.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "load authors")
	}
	byID := make(map[bson.ObjectID]models.UserResponse, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Public()
	}
	return func(id bson.ObjectID) models.UserResponse {
		if u, ok := byID[id]; ok {
			return u
		}
		return models.UserResponse{ID: id}
	}, nil
}
