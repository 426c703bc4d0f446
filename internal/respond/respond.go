package respond

import "github.com/gofiber/fiber/v2"

// Success writes the uniform {status, data, message} envelope every 2xx
// response uses.
func Success(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"data":    data,
		"message": message,
	})
}

// NotFound writes {"error": message} directly, without involving the
// centralized error handler.
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}
