package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a citizen- or staff-filed record of a road defect requiring
// municipal action. Reports are never physically deleted; Rejected is a
// terminal soft-close state.
type Report struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ReportDate    time.Time     `gorm:"not null;index" json:"report_date"`
	Location      string        `gorm:"size:255;not null" json:"location"`
	Barangay      string        `gorm:"size:100;not null;index" json:"barangay"`
	RoadType      RoadType      `gorm:"size:50;not null" json:"road_type"`
	ConditionType ConditionType `gorm:"size:50;not null;index" json:"condition_type"`
	Severity      Severity      `gorm:"size:20;not null" json:"severity"`
	Description   string        `gorm:"type:text" json:"description"`
	ImagePath     *string       `gorm:"size:500" json:"image_path,omitempty"`

	Status   Status    `gorm:"size:30;not null;default:'Pending';index" json:"status"`
	Priority *Priority `gorm:"size:20" json:"priority,omitempty"`

	ReporterID   *uuid.UUID `gorm:"type:uuid;index" json:"reporter_id,omitempty"`
	ReporterName string     `gorm:"size:100" json:"reporter_name"`
	ReporterRole Role       `gorm:"size:20" json:"reporter_role"`

	VerifiedBy   *uuid.UUID `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerifiedDate *time.Time `json:"verified_date,omitempty"`

	AssignedTo   *uuid.UUID `gorm:"type:uuid;index" json:"assigned_to,omitempty"`
	AssignedDate *time.Time `json:"assigned_date,omitempty"`

	// Optional secondary assignee for patrol follow-up, distinct from the
	// primary assignee.
	TanodFollowUp *uuid.UUID `gorm:"type:uuid" json:"tanod_follow_up,omitempty"`

	DispatchNotes string     `gorm:"type:text" json:"dispatch_notes,omitempty"`
	DispatchTime  *time.Time `json:"dispatch_time,omitempty"`

	ResolutionNotes string     `gorm:"type:text" json:"resolution_notes,omitempty"`
	ResolvedDate    *time.Time `json:"resolved_date,omitempty"`

	FollowUpNotes string `gorm:"type:text" json:"follow_up_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "road_condition_reports"
}

// Overdue reports whether the report has sat in Assigned longer than the
// given threshold without resolution.
func (r *Report) Overdue(now time.Time, threshold time.Duration) bool {
	return r.Status == StatusAssigned && r.AssignedDate != nil &&
		now.Sub(*r.AssignedDate) > threshold
}
