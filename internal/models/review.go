package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a user's rating of a catalog watch. The composite unique index
// enforces at most one review per (user, watch) pair at the storage layer.
type Review struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_watch" json:"userId"`
	WatchID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_watch" json:"watchId"`
	ReviewText string    `gorm:"type:text;not null" json:"reviewText"`
	Score      int       `gorm:"not null" json:"score"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Watch      *Watch    `gorm:"foreignKey:WatchID" json:"watch,omitempty"`
	Comments   []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// BeforeCreate assigns a UUID primary key when one was not provided.
func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
