package server

import (
	"watchreview/internal/models"
	"watchreview/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	CommentText string `json:"commentText"`
}

// CreateComment handles POST /api/watches/:watchId/reviews/:reviewId/comments.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		appErr := models.NewValidationError("Invalid request body")
		return models.RespondWithError(c, models.ErrorStatus(appErr), appErr)
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:      callerID(c),
		WatchID:     c.Params("watchId"),
		ReviewID:    c.Params("reviewId"),
		CommentText: req.CommentText,
	})
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// GetMyComments handles GET /api/comments/me.
func (s *Server) GetMyComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListMine(c.UserContext(), callerID(c))
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(comments)
}

// UpdateComment handles PUT /api/users/:userId/comments/:commentId.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		appErr := models.NewValidationError("Invalid request body")
		return models.RespondWithError(c, models.ErrorStatus(appErr), appErr)
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		CallerID:    callerID(c),
		PathUserID:  c.Params("userId"),
		CommentID:   c.Params("commentId"),
		CommentText: req.CommentText,
	})
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment handles DELETE /api/users/:userId/comments/:commentId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	err := s.commentService.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		CallerID:   callerID(c),
		PathUserID: c.Params("userId"),
		CommentID:  c.Params("commentId"),
	})
	if err != nil {
		return models.RespondWithError(c, models.ErrorStatus(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment deleted successfully.",
	})
}
