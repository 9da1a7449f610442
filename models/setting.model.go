package models

import "time"

// Setting is a key/value pair of application configuration.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"type:varchar(100);not null;unique" validate:"required,max=100"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}
