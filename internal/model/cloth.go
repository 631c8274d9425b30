package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cloth status values.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

// Cloth is a sellable product. Image fields hold external storage
// references; uploads themselves are handled outside this service.
type Cloth struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"index;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description *string
	Status      string    `gorm:"type:varchar(20);not null;default:'available'"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ManagerID   uuid.UUID `gorm:"type:uuid;not null;index"`

	ImageFront *string
	ImageLeft  *string
	ImageRight *string

	// Likes only ever grows; increments happen via a single UPDATE.
	Likes int `gorm:"not null;default:0;check:likes >= 0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	Manager  *User     `gorm:"foreignKey:ManagerID"`
}

func (Cloth) TableName() string { return "clothes" }

func (c *Cloth) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
