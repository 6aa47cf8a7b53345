package reviewValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casinohub/middleware"
)

var validate = validator.New()

// CreateReviewRequest is the validated review creation payload. Stars
// are range-checked here at the boundary; the store's CHECK constraint
// is the backstop.
type CreateReviewRequest struct {
	Stars    int    `json:"stars" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment"`
	CasinoID uint   `json:"casino_id" validate:"required"`
}

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
