package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"marketpro/store"
	"marketpro/utils"
)

type UserController struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func NewUserController(s *store.Store, logger *logrus.Logger) *UserController {
	return &UserController{
		Store:  s,
		Logger: logger,
	}
}

// GetUser returns a single user. The password hash never serializes.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, ok := uc.Store.GetUser(id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(user)
}
