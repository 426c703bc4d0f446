// Package server assembles the fiber app: centralized error handling,
// middleware, and the /api/v1 route table pairing each endpoint with its
// validator and handler.
package server

import (
	"errors"
	"log"
	"time"

	"directory-backend/internal/branch"
	"directory-backend/internal/docstore"
	"directory-backend/internal/employee"
	"directory-backend/internal/health"
	"directory-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func New(store docstore.Store, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		// Path params carry free text (department names), decode %XX escapes.
		UnescapePath: true,
	})

	app.Use(accessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	branches := branch.NewService(store)
	employees := employee.NewService(store)

	v1 := app.Group("/api/v1")

	v1.Get("/health", health.Handler())
	v1.Get("/health/ready", health.ReadyHandler(store))

	v1.Get("/branches", branch.ListBranchesHandler(branches))
	v1.Post("/branches", validation.New(branch.CreateSchema()), branch.CreateBranchHandler(branches))
	v1.Get("/branches/:id", validation.New(branch.IDSchema()), branch.GetBranchHandler(branches))
	v1.Put("/branches/:id", validation.New(branch.UpdateSchema()), branch.UpdateBranchHandler(branches))
	v1.Delete("/branches/:id", validation.New(branch.IDSchema()), branch.DeleteBranchHandler(branches))

	v1.Get("/employees", employee.ListEmployeesHandler(employees))
	v1.Post("/employees", validation.New(employee.CreateSchema()), employee.CreateEmployeeHandler(employees))
	// Filtered listings must register before /employees/:id.
	v1.Get("/employees/branch/:branchId", validation.New(employee.BranchParamSchema()), employee.ListEmployeesByBranchHandler(employees))
	v1.Get("/employees/department/:department", validation.New(employee.DepartmentParamSchema()), employee.ListEmployeesByDepartmentHandler(employees))
	v1.Get("/employees/:id", validation.New(employee.IDSchema()), employee.GetEmployeeHandler(employees))
	v1.Put("/employees/:id", validation.New(employee.UpdateSchema()), employee.UpdateEmployeeHandler(employees))
	v1.Delete("/employees/:id", validation.New(employee.IDSchema()), employee.DeleteEmployeeHandler(employees))

	return app
}

// errorHandler shapes every forwarded error as {"error": message}. Non-fiber
// errors are infrastructure failures: logged, answered as a plain 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
		})
	}
	log.Println("Unexpected error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

// accessLog emits one JSON line per request.
func accessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		log.Printf(`{"method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			c.Method(),
			c.Path(),
			status,
			time.Since(started).Milliseconds(),
		)
		return err
	}
}
