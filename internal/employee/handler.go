package employee

import (
	"strconv"

	"directory-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

const notFoundMessage = "Employee not found"

func ListEmployeesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees, err := svc.GetAll(c.UserContext())
		if err != nil {
			return err
		}
		return respond.Success(c, fiber.StatusOK, employees, "Employees retrieved successfully")
	}
}

// ListEmployeesByBranchHandler answers 404 when no employee references the
// branch; the contract does not distinguish "no matches" from "unknown
// branch".
func ListEmployeesByBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The schema already guarantees a numeric param.
		branchID, _ := strconv.Atoi(c.Params("branchId"))
		employees, err := svc.GetByBranch(c.UserContext(), branchID)
		if err != nil {
			return err
		}
		if len(employees) == 0 {
			return respond.NotFound(c, "Branch not found")
		}
		return respond.Success(c, fiber.StatusOK, employees, "Employees retrieved successfully")
	}
}

// ListEmployeesByDepartmentHandler has the same empty-is-404 behavior as the
// branch listing.
func ListEmployeesByDepartmentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees, err := svc.GetByDepartment(c.UserContext(), c.Params("department"))
		if err != nil {
			return err
		}
		if len(employees) == 0 {
			return respond.NotFound(c, "Department not found")
		}
		return respond.Success(c, fiber.StatusOK, employees, "Employees retrieved successfully")
	}
}

func GetEmployeeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		e, err := svc.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if e == nil {
			return respond.NotFound(c, notFoundMessage)
		}
		return respond.Success(c, fiber.StatusOK, e, "Employee retrieved successfully")
	}
}

func CreateEmployeeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		e, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return respond.Success(c, fiber.StatusCreated, e, "Employee created successfully")
	}
}

func UpdateEmployeeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateInput
		// An empty body is a legal partial update that touches nothing.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
			}
		}
		e, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		if e == nil {
			return respond.NotFound(c, notFoundMessage)
		}
		return respond.Success(c, fiber.StatusOK, e, "Employee updated successfully")
	}
}

func DeleteEmployeeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if !deleted {
			return respond.NotFound(c, notFoundMessage)
		}
		return respond.Success(c, fiber.StatusOK, fiber.Map{}, "Employee deleted successfully")
	}
}
