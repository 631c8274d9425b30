package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteRating is an anonymous 1-5 star rating of the store itself.
// Records are written once and never updated or deleted.
type SiteRating struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	SubmitterIP *string   `gorm:"type:varchar(45)"`
	CreatedAt   time.Time `gorm:"index"`
}

func (r *SiteRating) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
