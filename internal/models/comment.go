package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a remark attached to a review. Any authenticated user may
// comment on any review; only the author may modify or delete it.
type Comment struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"userId"`
	ReviewID    string    `gorm:"type:uuid;not null;index" json:"reviewId"`
	CommentText string    `gorm:"type:text;not null" json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Review      *Review   `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
}

// BeforeCreate assigns a UUID primary key when one was not provided.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
