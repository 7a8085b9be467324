package models

import (
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Genre     string    `gorm:"type:varchar(100)"`
	Country   string    `gorm:"type:varchar(100)"`
	ImageURL  *string   `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
