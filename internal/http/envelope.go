// Package http holds the fiber handlers and the shared response envelope.
// Every response is { data, error } with an optional errors field carrying
// the field -> messages mapping from validation.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PIliev24/green-street/internal/domain"
)

type envelope struct {
	Data   any                `json:"data"`
	Error  *string            `json:"error"`
	Errors domain.FieldErrors `json:"errors,omitempty"`
}

func Data(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(envelope{Data: data})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Error: &message})
}

func FailFields(c *fiber.Ctx, status int, errs domain.FieldErrors) error {
	msg := errs.Error()
	return c.Status(status).JSON(envelope{Error: &msg, Errors: errs})
}

// FailErr maps the domain error taxonomy onto HTTP statuses: field errors
// are 400, missing records 404, unknown state tokens 400, anything else is
// a persistence failure surfaced as a general field error with 500.
func FailErr(c *fiber.Ctx, err error) error {
	var errs domain.FieldErrors
	switch {
	case errors.As(err, &errs):
		return FailFields(c, fiber.StatusBadRequest, errs)
	case errors.Is(err, domain.ErrNotFound):
		return Fail(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidState):
		return FailFields(c, fiber.StatusBadRequest, domain.FieldErrors{
			"state": []string{err.Error()},
		})
	default:
		return FailFields(c, fiber.StatusInternalServerError, domain.GeneralErrors(err.Error()))
	}
}
