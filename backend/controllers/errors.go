package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"trak/backend/services"
	"trak/backend/utils"
)

// serviceError maps a core error to the matching HTTP response.
func serviceError(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	var conflict *services.ConflictError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		return utils.NotFound(c, notFound.Error())
	case errors.As(err, &conflict):
		return utils.Conflict(c, conflict.Error())
	case errors.As(err, &validation):
		return utils.BadRequest(c, validation.Error())
	default:
		return utils.InternalServerError(c, "Could not query database")
	}
}
