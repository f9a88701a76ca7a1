package service

import (
	"context"
	"strings"

	"watchreview/internal/models"
	"watchreview/internal/observability"
	"watchreview/internal/repository"
)

// CommentService implements validation and ownership rules for comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
}

// CreateCommentInput carries the fields needed to create a comment.
type CreateCommentInput struct {
	UserID      string
	WatchID     string
	ReviewID    string
	CommentText string
}

// UpdateCommentInput carries the fields needed to update a comment.
type UpdateCommentInput struct {
	CallerID    string
	PathUserID  string
	CommentID   string
	CommentText string
}

// DeleteCommentInput identifies a comment to delete on behalf of a caller.
type DeleteCommentInput struct {
	CallerID   string
	PathUserID string
	CommentID  string
}

// NewCommentService returns a CommentService backed by the given repositories.
func NewCommentService(commentRepo repository.CommentRepository, reviewRepo repository.ReviewRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, reviewRepo: reviewRepo}
}

// CreateComment attaches a comment to a review after confirming the review
// exists and belongs to the stated watch.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.CommentText) == "" {
		return nil, models.NewValidationError("Comment text is required.")
	}

	review, err := s.reviewRepo.GetByID(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	if review.WatchID != in.WatchID {
		return nil, models.NewNotFoundError("Review not found for this watch.")
	}

	comment := &models.Comment{
		UserID:      in.UserID,
		ReviewID:    in.ReviewID,
		CommentText: in.CommentText,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	observability.CommentsCreated.Inc()
	return comment, nil
}

// ListMine returns the caller's comments with each parent review and its
// watch summary. A caller with no comments gets a not-found result.
func (s *CommentService) ListMine(ctx context.Context, userID string) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, models.NewNotFoundError("No comments found for this user.")
	}
	return comments, nil
}

// UpdateComment replaces the text of a comment owned by the caller.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if !AuthorizeOwner(in.CallerID, in.PathUserID, comment.UserID) {
		return nil, models.NewForbiddenError("You are not authorized to update this comment.")
	}
	if strings.TrimSpace(in.CommentText) == "" {
		return nil, models.NewValidationError("Comment text is required.")
	}

	comment.CommentText = in.CommentText
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment owned by the caller.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if !AuthorizeOwner(in.CallerID, in.PathUserID, comment.UserID) {
		return models.NewForbiddenError("You are not authorized to delete this comment.")
	}
	return s.commentRepo.Delete(ctx, in.CommentID)
}
