package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"routine-tracker/internal/middleware"
	"routine-tracker/internal/model"
	"routine-tracker/pkg/response"
)

// respondError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a generic failure; retries are the
// caller's business.
func respondError(c *gin.Context, err error) {
	var validation *model.ValidationError
	var notFound *model.NotFoundError
	switch {
	case errors.As(err, &validation):
		response.BadRequest(c, validation.Error())
	case errors.As(err, &notFound):
		response.NotFound(c, notFound.Error())
	default:
		response.InternalError(c, err.Error())
	}
}

// requireUser rejects requests acting for a user other than the token
// subject. Returns false after writing the response.
func requireUser(c *gin.Context, userID string) bool {
	if !middleware.AuthorizedFor(c, userID) {
		response.Forbidden(c, "token subject does not match user")
		return false
	}
	return true
}
