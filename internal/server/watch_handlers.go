package server

import (
	"watchreview/internal/models"
	"watchreview/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// GetWatches handles GET /api/watches with pagination and optional
// case-insensitive brand/model substring filters.
func (s *Server) GetWatches(c *fiber.Ctx) error {
	pagination := parsePagination(c, 10)

	filter := repository.WatchFilter{
		Brand: c.Query("brand"),
		Model: c.Query("model"),
	}

	watches, err := s.watchRepo.List(c.UserContext(), filter, pagination.Limit, pagination.Offset())
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(watches)
}

// GetWatch handles GET /api/watches/:watchId.
func (s *Server) GetWatch(c *fiber.Ctx) error {
	watch, err := s.watchRepo.GetByID(c.UserContext(), c.Params("watchId"))
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(watch)
}

// SearchWatches handles GET /search-watches, a free-text lookup over name,
// brand, and model.
func (s *Server) SearchWatches(c *fiber.Ctx) error {
	filter := repository.WatchFilter{Query: c.Query("query")}

	watches, err := s.watchRepo.List(c.UserContext(), filter, 0, 0)
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(watches)
}

// GetWatchAverageScore handles GET /api/watches/:watchId/average.
func (s *Server) GetWatchAverageScore(c *fiber.Ctx) error {
	average, err := s.watchRepo.AverageScore(c.UserContext(), c.Params("watchId"))
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"average_score": average,
	})
}
