package branch

import (
	"directory-backend/internal/respond"

	"github.com/gofiber/fiber/v2"
)

const notFoundMessage = "Branch not found"

func ListBranchesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := svc.GetAll(c.UserContext())
		if err != nil {
			return err
		}
		return respond.Success(c, fiber.StatusOK, branches, "Branches retrieved successfully")
	}
}

func GetBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if b == nil {
			return respond.NotFound(c, notFoundMessage)
		}
		return respond.Success(c, fiber.StatusOK, b, "Branch retrieved successfully")
	}
}

func CreateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		b, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return respond.Success(c, fiber.StatusCreated, b, "Branch created successfully")
	}
}

func UpdateBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateInput
		// An empty body is a legal partial update that touches nothing.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
			}
		}
		b, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		if b == nil {
			return respond.NotFound(c, notFoundMessage)
		}
		return respond.Success(c, fiber.StatusOK, b, "Branch updated successfully")
	}
}

func DeleteBranchHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deleted, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if !deleted {
			return respond.NotFound(c, notFoundMessage)
		}
		return respond.Success(c, fiber.StatusOK, fiber.Map{}, "Branch deleted successfully")
	}
}
