package handler

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GetUsers handles GET /get-users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User data fetched",
		"data":    users,
	})
}

// GetUser handles GET /get-user/:user_id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return fail(c, err)
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Fetched specific user data",
		"data":    user,
	})
}

// AddUser handles POST /add-user
func (h *UserHandler) AddUser(c *fiber.Ctx) error {
	var user model.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	if err := h.service.CreateUser(&user); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "New user added successfully",
		"data":    user,
	})
}

// UpdateUser handles PUT /update-user/:user_id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return fail(c, err)
	}

	var patch model.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	user, err := h.service.UpdateUser(id, &patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User's data updated",
		"data":    user,
	})
}

// DeleteUser handles DELETE /delete-user/:user_id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return fail(c, err)
	}

	user, err := h.service.DeleteUser(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User's data deleted",
		"data":    user,
	})
}
