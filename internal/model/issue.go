package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// IssueStatus represents the lifecycle status of an issue.
type IssueStatus string

const (
	IssueStatusReported IssueStatus = "Reported"
	IssueStatusAssigned IssueStatus = "Assigned"
	IssueStatusResolved IssueStatus = "Resolved"
)

// IsValid checks if the status is known.
func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusReported, IssueStatusAssigned, IssueStatusResolved:
		return true
	default:
		return false
	}
}

// IsTerminal returns true for statuses with no outgoing transitions.
func (s IssueStatus) IsTerminal() bool {
	return s == IssueStatusResolved
}

// Severity is the classifier's priority label.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
	SeverityPending  Severity = "Pending"
)

// ParseSeverity maps a classifier label to a Severity, falling back to Pending.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(s)
	default:
		return SeverityPending
	}
}

// CategoryPending is the category of an issue the classifier has not labelled yet.
const CategoryPending = "Pending Analysis"

// Location is a geographic point.
type Location struct {
	Longitude float64 `json:"longitude" gorm:"column:longitude;not null"`
	Latitude  float64 `json:"latitude" gorm:"column:latitude;not null"`
}

// IsValid returns true for two finite in-range coordinates.
func (l Location) IsValid() bool {
	if math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) ||
		math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) {
		return false
	}
	return l.Longitude >= -180 && l.Longitude <= 180 &&
		l.Latitude >= -90 && l.Latitude <= 90
}

// Issue represents a reported civic problem.
type Issue struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Location    Location       `json:"location" gorm:"embedded"`
	Status      IssueStatus    `json:"status" gorm:"type:varchar(20);not null;default:Reported;index"`
	ReporterID  *uuid.UUID     `json:"reporter_id,omitempty" gorm:"type:uuid;index"`
	Category    string         `json:"category" gorm:"not null;default:'Pending Analysis'"`
	Severity    Severity       `json:"severity" gorm:"type:varchar(20);not null;default:Pending"`
	Classified  bool           `json:"classified" gorm:"not null;default:false"`
	Duplicate   bool           `json:"duplicate_flag" gorm:"column:duplicate_flag;not null;default:false"`
	ImageRefs   pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName returns the database table name.
func (Issue) TableName() string {
	return "issues"
}

// IssueFilter narrows issue listings. Results are ordered newest first.
type IssueFilter struct {
	Status     *IssueStatus
	ReporterID *uuid.UUID
	Limit      int
	Offset     int
}
