package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	ReportDate    *time.Time `json:"report_date"`
	Location      string     `json:"location"`
	Barangay      string     `json:"barangay"`
	RoadType      string     `json:"road_type"`
	ConditionType string     `json:"condition_type"`
	Severity      string     `json:"severity"`
	Description   string     `json:"description"`
	ImagePath     string     `json:"image_path"`
}

// ExpectedStatus carries the status the caller last observed. When set, the
// mutation fails with a conflict if the report has since moved on.
type VerifyRequest struct {
	Priority       string  `json:"priority"`
	ExpectedStatus *string `json:"expected_status"`
}

type NotesRequest struct {
	Notes          string  `json:"notes"`
	ExpectedStatus *string `json:"expected_status"`
}

type AssignRequest struct {
	AssignedTo     uuid.UUID `json:"assigned_to"`
	Priority       string    `json:"priority"`
	Notes          string    `json:"notes"`
	ExpectedStatus *string   `json:"expected_status"`
}

type ReassignRequest struct {
	AssignedTo     uuid.UUID `json:"assigned_to"`
	Notes          string    `json:"notes"`
	ExpectedStatus *string   `json:"expected_status"`
}

type UpdateStatusRequest struct {
	Status         string  `json:"status"`
	ExpectedStatus *string `json:"expected_status"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

type TanodFollowUpRequest struct {
	TanodID uuid.UUID `json:"tanod_id"`
	Notes   string    `json:"notes"`
}

type BulkAssignRequest struct {
	ReportIDs  []uint    `json:"report_ids"`
	AssignedTo uuid.UUID `json:"assigned_to"`
	Priority   string    `json:"priority"`
	Notes      string    `json:"notes"`
}

type OverrideStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type ReportFilter struct {
	Status     string
	AssignedTo *uuid.UUID
	Priority   string
	Barangay   string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}

type StatisticsResponse struct {
	Unassigned       int64 `json:"unassigned"`
	Assigned         int64 `json:"assigned"`
	InProgress       int64 `json:"in_progress"`
	EmergencyPending int64 `json:"emergency_pending"`
	HighPending      int64 `json:"high_pending"`
	Overdue          int64 `json:"overdue"`
}
