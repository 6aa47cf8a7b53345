package reviewController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"casinohub/database"
	"casinohub/middleware"
	"casinohub/models"
	"casinohub/repository"
	reviewValidator "casinohub/validators/review"
)

// CreateReview submits the authenticated user's review of a casino.
// The casino lookup runs first so an unknown casino answers 404 before
// any duplicate conflict can surface. The duplicate check itself is the
// store's composite unique index, not a read-then-write.
func CreateReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	reqData := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)

	db := database.Database.Db

	if _, err := repository.NewCasinos(db).FindByID(reqData.CasinoID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Casino not found!", nil)
	}

	review, err := repository.NewReviews(db).Create(reqData.Stars, reqData.Comment, userId, reqData.CasinoID)
	if errors.Is(err, repository.ErrDuplicate) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already reviewed this casino!", nil)
	}
	if errors.Is(err, repository.ErrOutOfRange) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"stars": "stars must be between 1 and 5!",
		})
	}
	if err != nil {
		log.Printf("Error saving review to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully.", review)
}

// reviewResponse carries the reviewer display name alongside the review
// row. The name comes from a second lookup at the boundary, not a live
// back-reference.
type reviewResponse struct {
	models.Review
	UserName string `json:"user_name"`
}

// ListReviews returns a page of reviews in stable id order, optionally
// filtered by casino.
func ListReviews(c *fiber.Ctx) error {
	casinoId := c.QueryInt("casino_id", 0)
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)

	if casinoId < 0 {
		casinoId = 0
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	reviews, err := repository.NewReviews(database.Database.Db).List(uint(casinoId), offset, limit)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	response := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, reviewResponse{
			Review:   r,
			UserName: r.User.Name,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": response,
		"pagination": fiber.Map{
			"offset": offset,
			"limit":  limit,
		},
	})
}
