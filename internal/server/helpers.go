package server

import (
	"github.com/gofiber/fiber/v2"
)

const maxPageLimit = 100

// Pagination holds parsed page/limit query parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset converts the page number to a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// parsePagination extracts the page and limit query parameters, falling back
// to page 1 and the given default limit for missing or non-positive values.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return Pagination{Page: page, Limit: limit}
}

// callerID returns the authenticated user's ID stored by AuthRequired.
func callerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}
