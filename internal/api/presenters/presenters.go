package presenters

import "github.com/gofiber/fiber/v2"

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	res := fiber.Map{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		res["error"] = err.Error()
	}
	return c.Status(code).JSON(res)
}
