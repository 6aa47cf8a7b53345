package casinoController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"casinohub/database"
	"casinohub/middleware"
	"casinohub/repository"
	casinoValidator "casinohub/validators/casino"
)

// CreateCasino adds a casino to the catalogue. Name uniqueness is
// enforced by the store.
func CreateCasino(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCasino").(*casinoValidator.CreateCasinoRequest)

	casino, err := repository.NewCasinos(database.Database.Db).Create(reqData.Name)
	if errors.Is(err, repository.ErrDuplicate) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Casino name is already registered!", nil)
	}
	if err != nil {
		log.Printf("Error saving casino to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create casino!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Casino created successfully.", casino)
}

// ListCasinos returns a page of casinos in stable id order.
func ListCasinos(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)

	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	casinos, err := repository.NewCasinos(database.Database.Db).List(offset, limit)
	if err != nil {
		log.Printf("Error fetching casinos: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch casinos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Casinos fetched!", fiber.Map{
		"casinos": casinos,
		"pagination": fiber.Map{
			"offset": offset,
			"limit":  limit,
		},
	})
}
