package models

// Status is the lifecycle state of a road condition report.
type Status string

const (
	StatusPending            Status = "Pending"
	StatusVerified           Status = "Verified"
	StatusAssigned           Status = "Assigned"
	StatusInProgress         Status = "In Progress"
	StatusResolved           Status = "Resolved"
	StatusRejected           Status = "Rejected"
	StatusNeedsClarification Status = "Needs Clarification"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusAssigned, StatusInProgress,
		StatusResolved, StatusRejected, StatusNeedsClarification:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are defined from s.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// Priority is the staff-assigned operational urgency, distinct from the
// reporter's severity assessment.
type Priority string

const (
	PriorityLow       Priority = "Low"
	PriorityMedium    Priority = "Medium"
	PriorityHigh      Priority = "High"
	PriorityEmergency Priority = "Emergency"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// Rank returns the sort rank used by dashboard listings. Emergency sorts
// first; unknown values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityEmergency:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	}
	return 5
}

// Severity is the reporter's danger assessment, fixed at creation.
type Severity string

const (
	SeverityLow       Severity = "Low"
	SeverityMedium    Severity = "Medium"
	SeverityHigh      Severity = "High"
	SeverityEmergency Severity = "Emergency"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityEmergency:
		return true
	}
	return false
}

type RoadType string

const (
	RoadTypeMajor  RoadType = "Major Road"
	RoadTypeMinor  RoadType = "Minor Road"
	RoadTypeAlley  RoadType = "Alley"
	RoadTypeBridge RoadType = "Bridge"
	RoadTypeOther  RoadType = "Other"
)

func (r RoadType) Valid() bool {
	switch r {
	case RoadTypeMajor, RoadTypeMinor, RoadTypeAlley, RoadTypeBridge, RoadTypeOther:
		return true
	}
	return false
}

type ConditionType string

const (
	ConditionPothole         ConditionType = "Pothole"
	ConditionFlooding        ConditionType = "Flooding"
	ConditionDebris          ConditionType = "Debris"
	ConditionDamagedPavement ConditionType = "Damaged Pavement"
	ConditionSlipperySurface ConditionType = "Slippery Surface"
	ConditionMissingSignage  ConditionType = "Missing Signage"
	ConditionPoorDrainage    ConditionType = "Poor Drainage"
	ConditionVegetation      ConditionType = "Vegetation Overgrowth"
	ConditionOther           ConditionType = "Other"
)

func (c ConditionType) Valid() bool {
	switch c {
	case ConditionPothole, ConditionFlooding, ConditionDebris, ConditionDamagedPavement,
		ConditionSlipperySurface, ConditionMissingSignage, ConditionPoorDrainage,
		ConditionVegetation, ConditionOther:
		return true
	}
	return false
}

// Role identifies an actor's position in the municipality.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleTanod    Role = "TANOD"
	RoleUser     Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleTanod, RoleUser:
		return true
	}
	return false
}

// Assignable reports whether a user with this role may be the primary
// assignee of a report.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleTanod
}
