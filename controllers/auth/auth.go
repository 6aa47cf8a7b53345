package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"casinohub/database"
	"casinohub/middleware"
	"casinohub/repository"
	"casinohub/utils"
	authValidator "casinohub/validators/auth"
)

// Signup registers a new user and returns the created user together
// with a fresh token. Email uniqueness is not pre-checked: the insert
// hits the store's unique index and a duplicate comes back typed.
func Signup(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSignup").(*authValidator.SignupRequest)

	hashedPassword, err := utils.HashPassword(reqData.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user, err := repository.NewUsers(database.Database.Db).Create(reqData.Email, hashedPassword, reqData.Name)
	if errors.Is(err, repository.ErrDuplicate) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is already registered!", nil)
	}
	if err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password answer with the same message so callers cannot probe
// which emails are registered.
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	user, err := repository.NewUsers(database.Database.Db).FindByEmail(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if !utils.CheckPassword(user.Password, reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
	})
}
