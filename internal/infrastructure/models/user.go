package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Nickname     string    `gorm:"type:varchar(100);not null"`
	Password     *string   `gorm:"type:varchar(255)"`
	ProfileImage *string   `gorm:"type:varchar(512)"`
	Role         string    `gorm:"type:varchar(50);not null;default:'user'"`
	Provider     string    `gorm:"type:varchar(50);not null;default:'local'"`
	SocialID     *string   `gorm:"type:varchar(255);uniqueIndex"`
	IsOnboarded  bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
