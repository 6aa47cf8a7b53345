package casinoValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casinohub/middleware"
)

var validate = validator.New()

// CreateCasinoRequest is the validated casino creation payload.
type CreateCasinoRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// CreateCasino validator middleware
func CreateCasino() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCasinoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedCasino", reqData)
		return c.Next()
	}
}
