package repository

import (
	"context"
	"errors"

	"watchreview/internal/models"

	"gorm.io/gorm"
)

// WatchFilter is the set of typed conditions a catalog listing can apply.
// Brand and Model are independent case-insensitive substring filters; Query
// matches any of name, brand, or model.
type WatchFilter struct {
	Brand string
	Model string
	Query string
}

// WatchRepository defines read operations over the immutable watch catalog.
type WatchRepository interface {
	List(ctx context.Context, filter WatchFilter, limit, offset int) ([]models.Watch, error)
	GetByID(ctx context.Context, id string) (*models.Watch, error)
	AverageScore(ctx context.Context, watchID string) (float64, error)
}

type watchRepository struct {
	db *gorm.DB
}

// NewWatchRepository returns a new WatchRepository implementation.
func NewWatchRepository(db *gorm.DB) WatchRepository {
	return &watchRepository{db: db}
}

func (r *watchRepository) List(ctx context.Context, filter WatchFilter, limit, offset int) ([]models.Watch, error) {
	var watches []models.Watch

	query := r.db.WithContext(ctx).Model(&models.Watch{})
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) LIKE LOWER(?)", "%"+filter.Brand+"%")
	}
	if filter.Model != "" {
		query = query.Where("LOWER(model) LIKE LOWER(?)", "%"+filter.Model+"%")
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?) OR LOWER(model) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Order("name").Find(&watches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return watches, nil
}

func (r *watchRepository) GetByID(ctx context.Context, id string) (*models.Watch, error) {
	var watch models.Watch
	if err := r.db.WithContext(ctx).First(&watch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Watch not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &watch, nil
}

func (r *watchRepository) AverageScore(ctx context.Context, watchID string) (float64, error) {
	var average *float64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("watch_id = ?", watchID).
		Select("AVG(score)").
		Scan(&average).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	if average == nil {
		return 0, nil
	}
	return *average, nil
}
