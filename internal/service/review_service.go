package service

import (
	"context"
	"strings"

	"watchreview/internal/models"
	"watchreview/internal/observability"
	"watchreview/internal/repository"
)

// ReviewService implements validation and ownership rules for reviews.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

// CreateReviewInput carries the fields needed to create a review.
type CreateReviewInput struct {
	UserID     string
	WatchID    string
	ReviewText string
	Score      int
}

// UpdateReviewInput carries the fields needed to update a review.
type UpdateReviewInput struct {
	CallerID   string
	PathUserID string
	ReviewID   string
	ReviewText string
	Score      int
}

// DeleteReviewInput identifies a review to delete on behalf of a caller.
type DeleteReviewInput struct {
	CallerID   string
	PathUserID string
	ReviewID   string
}

// NewReviewService returns a ReviewService backed by the given repository.
func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

func validateReviewInput(reviewText string, score int) error {
	if strings.TrimSpace(reviewText) == "" {
		return models.NewValidationError("Review text is required.")
	}
	if score < 1 || score > 5 {
		return models.NewValidationError("Score must be between 1 and 5.")
	}
	return nil
}

// CreateReview validates and persists a new review. The one-review-per-
// (user, watch) rule is enforced by the storage layer's unique index, not
// re-validated here.
func (s *ReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if err := validateReviewInput(in.ReviewText, in.Score); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:     in.UserID,
		WatchID:    in.WatchID,
		ReviewText: in.ReviewText,
		Score:      in.Score,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	observability.ReviewsCreated.Inc()
	return review, nil
}

// ListForWatch returns a watch's reviews with the reviewer preloaded. An
// unknown watch yields an empty list rather than an error.
func (s *ReviewService) ListForWatch(ctx context.Context, watchID string) ([]models.Review, error) {
	return s.reviewRepo.ListByWatch(ctx, watchID)
}

// GetForWatch fetches one review, requiring that it belongs to the given watch.
func (s *ReviewService) GetForWatch(ctx context.Context, reviewID, watchID string) (*models.Review, error) {
	return s.reviewRepo.GetByIDForWatch(ctx, reviewID, watchID)
}

// ListMine returns the caller's reviews with the reviewed watch preloaded.
func (s *ReviewService) ListMine(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID)
}

// UpdateReview replaces the text and score of a review owned by the caller.
func (s *ReviewService) UpdateReview(ctx context.Context, in UpdateReviewInput) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	if !AuthorizeOwner(in.CallerID, in.PathUserID, review.UserID) {
		return nil, models.NewForbiddenError("Forbidden. You can only update your own reviews.")
	}
	if err := validateReviewInput(in.ReviewText, in.Score); err != nil {
		return nil, err
	}

	review.ReviewText = in.ReviewText
	review.Score = in.Score
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review owned by the caller.
func (s *ReviewService) DeleteReview(ctx context.Context, in DeleteReviewInput) error {
	review, err := s.reviewRepo.GetByID(ctx, in.ReviewID)
	if err != nil {
		return err
	}
	if !AuthorizeOwner(in.CallerID, in.PathUserID, review.UserID) {
		return models.NewForbiddenError("Forbidden")
	}
	return s.reviewRepo.Delete(ctx, in.ReviewID)
}
