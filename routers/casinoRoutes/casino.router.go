package casinoRoutes

import (
	"github.com/gofiber/fiber/v2"

	casinoController "casinohub/controllers/casino"
	casinoValidator "casinohub/validators/casino"
)

func SetupCasinoRoutes(app *fiber.App) {
	casinoGroup := app.Group("/casino")

	casinoGroup.Post("/create", casinoValidator.CreateCasino(), casinoController.CreateCasino)
	casinoGroup.Get("/list", casinoController.ListCasinos)
}
