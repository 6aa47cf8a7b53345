package reviewRoutes

import (
	"github.com/gofiber/fiber/v2"

	reviewController "casinohub/controllers/review"
	"casinohub/middleware"
	reviewValidator "casinohub/validators/review"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review")

	reviewGroup.Post("/create", reviewValidator.CreateReview(), middleware.JWTMiddleware, reviewController.CreateReview)
	reviewGroup.Get("/list", reviewController.ListReviews)
}
