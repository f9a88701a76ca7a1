package server

import (
	"watchreview/internal/models"
	"watchreview/internal/service"

	"github.com/gofiber/fiber/v2"
)

type reviewRequest struct {
	ReviewText string `json:"reviewText"`
	Score      int    `json:"score"`
}

// GetWatchReviews handles GET /api/watches/:watchId/reviews.
func (s *Server) GetWatchReviews(c *fiber.Ctx) error {
	reviews, err := s.reviewService.ListForWatch(c.UserContext(), c.Params("watchId"))
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(reviews)
}

// GetReview handles GET /api/watches/:watchId/reviews/:reviewId.
func (s *Server) GetReview(c *fiber.Ctx) error {
	review, err := s.reviewService.GetForWatch(c.UserContext(), c.Params("reviewId"), c.Params("watchId"))
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(review)
}

// CreateReview handles POST /api/watches/:watchId/reviews.
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		appErr := models.NewValidationError("Invalid request body")
		return models.RespondWithError(c, models.ErrorStatus(appErr), appErr)
	}

	review, err := s.reviewService.CreateReview(c.UserContext(), service.CreateReviewInput{
		UserID:     callerID(c),
		WatchID:    c.Params("watchId"),
		ReviewText: req.ReviewText,
		Score:      req.Score,
	})
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review added successfully",
		"review":  review,
	})
}

// UpdateReview handles PUT /api/users/:userId/reviews/:reviewId.
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		appErr := models.NewValidationError("Invalid request body")
		return models.RespondWithError(c, models.ErrorStatus(appErr), appErr)
	}

	review, err := s.reviewService.UpdateReview(c.UserContext(), service.UpdateReviewInput{
		CallerID:   callerID(c),
		PathUserID: c.Params("userId"),
		ReviewID:   c.Params("reviewId"),
		ReviewText: req.ReviewText,
		Score:      req.Score,
	})
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(review)
}

// DeleteReview handles DELETE /api/users/:userId/reviews/:reviewId.
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	err := s.reviewService.DeleteReview(c.UserContext(), service.DeleteReviewInput{
		CallerID:   callerID(c),
		PathUserID: c.Params("userId"),
		ReviewID:   c.Params("reviewId"),
	})
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}

// GetMyReviews handles GET /api/reviews/me.
func (s *Server) GetMyReviews(c *fiber.Ctx) error {
	reviews, err := s.reviewService.ListMine(c.UserContext(), callerID(c))
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(reviews)
}
