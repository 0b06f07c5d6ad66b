package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/timetable/pkg/ctdf"
)

// ErrorHandler maps timetable error kinds onto HTTP statuses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberError *fiber.Error
	switch {
	case errors.As(err, &fiberError):
		status = fiberError.Code
	case errors.Is(err, ctdf.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ctdf.ErrAlreadyExists):
		status = fiber.StatusConflict
	case errors.Is(err, ctdf.ErrInvalidArgument):
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func sendReduced(c *fiber.Ctx, groups []string, data interface{}) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, data)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Sheriff could not reduce response")
	}

	return c.JSON(reduced)
}
