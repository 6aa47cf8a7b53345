package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard response envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse rejects a request whose body failed boundary
// validation.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// FieldErrors flattens validator.ValidationErrors into a field -> message
// map for ValidationErrorResponse.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "Invalid request body!"
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = fmt.Sprintf("%s is required!", name)
		case "email":
			fields[name] = "Invalid email!"
		case "min":
			fields[name] = fmt.Sprintf("%s must be at least %s characters long!", name, fe.Param())
		case "gte":
			fields[name] = fmt.Sprintf("%s must be at least %s!", name, fe.Param())
		case "lte":
			fields[name] = fmt.Sprintf("%s must be at most %s!", name, fe.Param())
		default:
			fields[name] = fmt.Sprintf("%s is invalid!", name)
		}
	}
	return fields
}
