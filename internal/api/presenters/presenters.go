package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}
	// internal store failures are logged by the caller; the detail is not leaked
	if err != nil && code != fiber.StatusInternalServerError {
		res.Error = err.Error()
	}
	return c.Status(code).JSON(res)
}
