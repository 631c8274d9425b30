package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteReview is a written review of the store. Reviews publish immediately
// (IsApproved defaults to true); moderation happens after the fact by
// flipping the flag.
type SiteReview struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Contact     *string
	ReviewText  string  `gorm:"type:text;not null"`
	SubmitterIP *string `gorm:"type:varchar(45)"`
	IsApproved  bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"index"`
}

func (r *SiteReview) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
