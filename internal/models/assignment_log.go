package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentLog is the append-only audit trail of a report's lifecycle.
// One entry is written for every mutating operation, including ones that
// do not change the assignee, so the rendered timeline stays complete.
// Entries are never updated or deleted.
type AssignmentLog struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	ReportID       uint       `gorm:"not null;index" json:"report_id"`
	AssignedBy     uuid.UUID  `gorm:"type:uuid;not null" json:"assigned_by"`
	AssignedByName string     `gorm:"size:100" json:"assigned_by_name"`
	AssignedTo     *uuid.UUID `gorm:"type:uuid" json:"assigned_to,omitempty"`
	AssignmentDate time.Time  `gorm:"not null;index" json:"assignment_date"`
	Notes          string     `gorm:"type:text" json:"notes"`

	Report Report `gorm:"foreignKey:ReportID" json:"-"`
}

func (AssignmentLog) TableName() string {
	return "assignment_logs"
}
