package repository

import (
	"errors"
	"testing"

	"watchreview/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	watch := createTestWatch(t, db, "Rolex Submariner", "Rolex", "Submariner 116610LN")
	review := createTestReview(t, db, alice.ID, watch.ID, 5)

	comment := &models.Comment{UserID: alice.ID, ReviewID: review.ID, CommentText: "Totally agree."}
	require.NoError(t, repo.Create(testCtx(), comment))
	assert.NotEmpty(t, comment.ID)

	found, err := repo.GetByID(testCtx(), comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Totally agree.", found.CommentText)

	_, err = repo.GetByID(testCtx(), "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.Equal(t, "Comment not found.", appErr.Message)
}

func TestCommentRepository_ListByUser(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	watch := createTestWatch(t, db, "Rolex Submariner", "Rolex", "Submariner 116610LN")
	review := createTestReview(t, db, alice.ID, watch.ID, 5)

	require.NoError(t, repo.Create(testCtx(), &models.Comment{
		UserID: bob.ID, ReviewID: review.ID, CommentText: "Interesting take.",
	}))
	require.NoError(t, repo.Create(testCtx(), &models.Comment{
		UserID: bob.ID, ReviewID: review.ID, CommentText: "How is the lume at night?",
	}))

	comments, err := repo.ListByUser(testCtx(), bob.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	for _, comment := range comments {
		require.NotNil(t, comment.Review)
		require.NotNil(t, comment.Review.Watch)
		assert.Equal(t, watch.ID, comment.Review.Watch.ID)
	}

	empty, err := repo.ListByUser(testCtx(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewCommentRepository(db)

	alice := createTestUser(t, db, "alice")
	watch := createTestWatch(t, db, "Rolex Submariner", "Rolex", "Submariner 116610LN")
	review := createTestReview(t, db, alice.ID, watch.ID, 5)

	comment := &models.Comment{UserID: alice.ID, ReviewID: review.ID, CommentText: "old"}
	require.NoError(t, repo.Create(testCtx(), comment))

	comment.CommentText = "new"
	require.NoError(t, repo.Update(testCtx(), comment))

	reloaded, err := repo.GetByID(testCtx(), comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", reloaded.CommentText)

	require.NoError(t, repo.Delete(testCtx(), comment.ID))
	_, err = repo.GetByID(testCtx(), comment.ID)
	require.Error(t, err)
}
