package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber  string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Nickname     string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Gender       string    `gorm:"type:varchar(10);not null"`
	Age          int       `gorm:"not null"`
	Weight       float64   `gorm:"type:decimal(5,2);not null"`
	Height       float64   `gorm:"type:decimal(5,2);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Level        string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsVerified   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
