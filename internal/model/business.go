package model

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Weekdays lists the keys accepted in Business.Hours.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// OpeningHours is one day's opening window in 24h "15:04" form.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Business is a listing in the local business directory. An owner has at
// most one listing.
type Business struct {
	ID          uuid.UUID               `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID               `json:"owner_id" gorm:"type:uuid;uniqueIndex;not null"`
	Name        string                  `json:"name" gorm:"not null"`
	Description string                  `json:"description" gorm:"type:text;not null"`
	Category    string                  `json:"category" gorm:"not null;index"`
	Address     string                  `json:"address" gorm:"not null"`
	Phone       string                  `json:"phone" gorm:"not null"`
	Email       string                  `json:"email" gorm:"not null"`
	Website     string                  `json:"website,omitempty"`
	Hours       map[string]OpeningHours `json:"hours,omitempty" gorm:"serializer:json"`
	Location    Location                `json:"location" gorm:"embedded"`
	ImageRefs   pq.StringArray          `json:"images" gorm:"type:text[]"`
	Verified    bool                    `json:"verified" gorm:"not null;default:false"`
	CreatedAt   time.Time               `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// TableName returns the database table name.
func (Business) TableName() string {
	return "businesses"
}

// Clone returns a copy that shares no slices or maps with b.
func (b *Business) Clone() *Business {
	c := *b
	c.Hours = maps.Clone(b.Hours)
	c.ImageRefs = slices.Clone(b.ImageRefs)
	return &c
}
