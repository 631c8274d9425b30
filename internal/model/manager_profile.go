package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManagerProfile is the one-to-one profile record attached to a staff user.
// Its lifecycle follows the user's (cascade on delete).
type ManagerProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (p *ManagerProfile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
