package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CleanerID     int       `gorm:"not null;index"`
	CustomerName  string    `gorm:"type:varchar(255);not null"`
	CustomerPhone string    `gorm:"type:varchar(50);not null"`
	Address       string    `gorm:"type:text;not null"`
	Date          string    `gorm:"type:varchar(10);not null"`
	TimeSlot      string    `gorm:"type:varchar(20);not null"`
	Notes         string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
