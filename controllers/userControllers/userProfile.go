package userController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"casinohub/database"
	"casinohub/middleware"
	"casinohub/repository"
	userValidator "casinohub/validators/userValidator"
)

// GetProfile returns the authenticated user's record.
func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	user, err := repository.NewUsers(database.Database.Db).FindByID(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", user)
}

// UpdateProfile changes the authenticated user's display name.
func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	reqData := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)

	user, err := repository.NewUsers(database.Database.Db).Rename(userId, reqData.Name)
	if err != nil {
		log.Printf("Error updating user name: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}
