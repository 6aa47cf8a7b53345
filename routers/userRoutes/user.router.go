package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userProfileController "casinohub/controllers/userControllers"
	"casinohub/middleware"
	userProfileValidator "casinohub/validators/userValidator"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/me", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Patch("/me", userProfileValidator.UpdateProfile(), middleware.JWTMiddleware, userProfileController.UpdateProfile)
}
