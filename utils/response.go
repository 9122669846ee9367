package utils

import (
	"net/http"

	"github.com/Ram-Jam5/movie-review-back-end/apperr"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// RespondError renders err and aborts the chain. Errors outside the taxonomy are logged and reported as 500.
func RespondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	logger := zerolog.Ctx(c.Request.Context())
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Str("method", c.Request.Method).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", appErr.Status).Msg("request rejected")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}
