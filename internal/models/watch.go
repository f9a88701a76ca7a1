package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Watch is one entry in the reference catalog. The catalog is populated by
// the seed command and is read-only from the API's perspective.
type Watch struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Brand         string    `gorm:"not null;index" json:"brand"`
	Model         string    `gorm:"not null" json:"model"`
	ImageURL      string    `json:"imageUrl"`
	StrapMaterial string    `json:"strapMaterial"`
	MetalColor    string    `json:"metalColor"`
	Movement      string    `json:"movement"`
	CaseSize      int       `json:"caseSize"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Reviews       []Review  `gorm:"foreignKey:WatchID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// BeforeCreate assigns a UUID primary key when one was not provided.
func (w *Watch) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
