package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status    string    `gorm:"type:varchar(20);not null;default:'submitted'"`
	Profile   string    `gorm:"type:text;not null"` // ApplicantProfile snapshot as JSON
	Reason    string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
