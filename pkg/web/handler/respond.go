package handler

import (
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
	userservice "github.com/mcmikius/TILApp/pkg/core/user/service"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return 404
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		return 409
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, userservice.ErrInvalidCredentials):
		return 401
	default:
		return 500
	}
}

// respondError maps a service error onto the API error contract. Internal
// failures keep their detail out of the response body.
func respondError(c *app.RequestContext, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == 500 {
		msg = "internal server error"
	}
	c.JSON(status, utils.H{
		"code":  status,
		"error": msg,
	})
}

func respondBadRequest(c *app.RequestContext, err error) {
	c.JSON(400, utils.H{
		"code":  400,
		"error": err.Error(),
	})
}
