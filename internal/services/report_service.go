package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/actor"
	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultOverdueAfter is how long a report may sit in Assigned before the
// dashboards flag it overdue.
const DefaultOverdueAfter = 72 * time.Hour

// ReportService owns the status/priority/assignment state of a report from
// creation through resolution. Every mutation validates against the
// transition table, runs inside one transaction together with its audit-log
// entry, and carries an optimistic status guard on the UPDATE.
type ReportService struct {
	db           *gorm.DB
	publisher    Publisher
	overdueAfter time.Duration
}

func NewReportService(db *gorm.DB, publisher Publisher, overdueAfter time.Duration) *ReportService {
	if publisher == nil {
		publisher = LogPublisher{}
	}
	if overdueAfter <= 0 {
		overdueAfter = DefaultOverdueAfter
	}
	return &ReportService{db: db, publisher: publisher, overdueAfter: overdueAfter}
}

// Create files a new report in status Pending on behalf of the acting user.
func (s *ReportService) Create(act actor.Actor, req *dto.CreateReportRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Location) == "" {
		return nil, validationError("location is required")
	}
	if strings.TrimSpace(req.Barangay) == "" {
		return nil, validationError("barangay is required")
	}
	roadType := models.RoadType(req.RoadType)
	if !roadType.Valid() {
		return nil, validationError("invalid road_type %q", req.RoadType)
	}
	conditionType := models.ConditionType(req.ConditionType)
	if !conditionType.Valid() {
		return nil, validationError("invalid condition_type %q", req.ConditionType)
	}
	severity := models.Severity(req.Severity)
	if !severity.Valid() {
		return nil, validationError("invalid severity %q", req.Severity)
	}

	reportDate := time.Now().UTC()
	if req.ReportDate != nil {
		reportDate = req.ReportDate.UTC()
	}

	report := models.Report{
		ReportDate:    reportDate,
		Location:      req.Location,
		Barangay:      req.Barangay,
		RoadType:      roadType,
		ConditionType: conditionType,
		Severity:      severity,
		Description:   req.Description,
		Status:        models.StatusPending,
		ReporterID:    &act.ID,
		ReporterName:  act.Name,
		ReporterRole:  act.Role,
	}
	if req.ImagePath != "" {
		report.ImagePath = &req.ImagePath
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.publisher.Publish(Event{
		Type:       EventReportCreated,
		ReportID:   report.ID,
		Status:     report.Status,
		ActorID:    act.ID,
		OccurredAt: time.Now().UTC(),
	})
	return &report, nil
}

// Verify moves a Pending report to Verified and assigns its operational
// priority.
func (s *ReportService) Verify(act actor.Actor, reportID uint, req *dto.VerifyRequest) (*models.Report, error) {
	priority := models.Priority(req.Priority)
	if !priority.Valid() {
		return nil, validationError("invalid priority %q", req.Priority)
	}
	now := time.Now().UTC()
	return s.apply(act, reportID, OpVerify, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"status":        models.StatusVerified,
		"verified_by":   act.ID,
		"verified_date": now,
		"priority":      priority,
	}, "Report verified with priority "+string(priority), nil)
}

// RequestClarification sends a Pending report back to its reporter.
func (s *ReportService) RequestClarification(act actor.Actor, reportID uint, req *dto.NotesRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationError("clarification notes are required")
	}
	return s.apply(act, reportID, OpRequestClarification, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"status":          models.StatusNeedsClarification,
		"follow_up_notes": req.Notes,
	}, "Clarification requested: "+req.Notes, nil)
}

// Reject closes a Pending report without action. The rejection reason lives
// in follow_up_notes; resolution_notes and resolved_date stay empty so the
// record never looks resolved.
func (s *ReportService) Reject(act actor.Actor, reportID uint, req *dto.NotesRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationError("rejection notes are required")
	}
	return s.apply(act, reportID, OpReject, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"status":          models.StatusRejected,
		"follow_up_notes": req.Notes,
	}, "Report rejected: "+req.Notes, nil)
}

// Assign hands a Verified report to a verified staff member and sets its
// priority.
func (s *ReportService) Assign(act actor.Actor, reportID uint, req *dto.AssignRequest) (*models.Report, error) {
	priority := models.Priority(req.Priority)
	if !priority.Valid() {
		return nil, validationError("invalid priority %q", req.Priority)
	}
	assignee, err := s.assignableUser(s.db, req.AssignedTo)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	note := req.Notes
	if strings.TrimSpace(note) == "" {
		note = "Assigned to " + assignee.Name
	}
	return s.apply(act, reportID, OpAssign, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"status":        models.StatusAssigned,
		"assigned_to":   assignee.ID,
		"assigned_date": now,
		"priority":      priority,
	}, note, &assignee.ID)
}

// Reassign moves an in-flight report to a different staff member without
// changing its status.
func (s *ReportService) Reassign(act actor.Actor, reportID uint, req *dto.ReassignRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationError("reassignment notes are required")
	}
	assignee, err := s.assignableUser(s.db, req.AssignedTo)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return s.apply(act, reportID, OpReassign, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"assigned_to":   assignee.ID,
		"assigned_date": now,
	}, req.Notes, &assignee.ID)
}

// UpdateStatus moves an Assigned report to In Progress. Other target states
// have dedicated operations with their own side effects.
func (s *ReportService) UpdateStatus(act actor.Actor, reportID uint, req *dto.UpdateStatusRequest) (*models.Report, error) {
	target := models.Status(req.Status)
	if !target.Valid() {
		return nil, validationError("invalid status %q", req.Status)
	}
	if target != models.StatusInProgress {
		return nil, validationError("status %q must be set through its dedicated operation", req.Status)
	}
	now := time.Now().UTC()
	return s.apply(act, reportID, OpUpdateStatus, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"status":        target,
		"assigned_date": now,
	}, "Status updated to "+string(target), nil)
}

// SetDispatch records dispatch details for a report already In Progress.
func (s *ReportService) SetDispatch(act actor.Actor, reportID uint, req *dto.NotesRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationError("dispatch notes are required")
	}
	now := time.Now().UTC()
	return s.apply(act, reportID, OpSetDispatch, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"dispatch_notes": req.Notes,
		"dispatch_time":  now,
	}, "Dispatch recorded: "+req.Notes, nil)
}

// Resolve closes an Assigned or In Progress report as fixed.
func (s *ReportService) Resolve(act actor.Actor, reportID uint, req *dto.NotesRequest) (*models.Report, error) {
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationError("resolution notes are required")
	}
	now := time.Now().UTC()
	return s.apply(act, reportID, OpResolve, expectedStatus(req.ExpectedStatus), map[string]interface{}{
		"status":           models.StatusResolved,
		"resolution_notes": req.Notes,
		"resolved_date":    now,
	}, "Report resolved: "+req.Notes, nil)
}

// UpdatePriority changes only the priority; allowed from any status.
func (s *ReportService) UpdatePriority(act actor.Actor, reportID uint, req *dto.UpdatePriorityRequest) (*models.Report, error) {
	priority := models.Priority(req.Priority)
	if !priority.Valid() {
		return nil, validationError("invalid priority %q", req.Priority)
	}
	return s.apply(act, reportID, OpUpdatePriority, nil, map[string]interface{}{
		"priority": priority,
	}, "Priority updated to "+string(priority), nil)
}

// AssignTanodFollowUp attaches a secondary patrol assignee; allowed from any
// status.
func (s *ReportService) AssignTanodFollowUp(act actor.Actor, reportID uint, req *dto.TanodFollowUpRequest) (*models.Report, error) {
	var tanod models.User
	if err := s.db.First(&tanod, "id = ?", req.TanodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tanod %s", ErrNotFound, req.TanodID)
		}
		return nil, fmt.Errorf("failed to load tanod: %w", err)
	}
	if tanod.Role != models.RoleTanod || !tanod.Verified {
		return nil, validationError("follow-up assignee must be a verified tanod")
	}
	note := req.Notes
	if strings.TrimSpace(note) == "" {
		note = "Tanod follow-up assigned to " + tanod.Name
	}
	return s.apply(act, reportID, OpTanodFollowUp, nil, map[string]interface{}{
		"tanod_follow_up": tanod.ID,
		"follow_up_notes": req.Notes,
	}, note, &tanod.ID)
}

// BulkAssign applies Assign to every listed report inside one transaction.
// If any report fails validation or is not in Verified, nothing is applied.
func (s *ReportService) BulkAssign(act actor.Actor, req *dto.BulkAssignRequest) ([]models.Report, error) {
	if len(req.ReportIDs) == 0 {
		return nil, validationError("report_ids must not be empty")
	}
	priority := models.Priority(req.Priority)
	if !priority.Valid() {
		return nil, validationError("invalid priority %q", req.Priority)
	}
	assignee, err := s.assignableUser(s.db, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	note := req.Notes
	if strings.TrimSpace(note) == "" {
		note = "Assigned to " + assignee.Name
	}

	var updated []models.Report
	err = s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, id := range req.ReportIDs {
			report, err := s.applyInTx(tx, act, id, OpAssign, nil, map[string]interface{}{
				"status":        models.StatusAssigned,
				"assigned_to":   assignee.ID,
				"assigned_date": now,
				"priority":      priority,
			}, note, &assignee.ID)
			if err != nil {
				return fmt.Errorf("report %d: %w", id, err)
			}
			updated = append(updated, *report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, r := range updated {
		s.publisher.Publish(Event{
			Type:       EventReportAssigned,
			ReportID:   r.ID,
			Status:     r.Status,
			ActorID:    act.ID,
			AssignedTo: r.AssignedTo,
			OccurredAt: now,
		})
	}
	return updated, nil
}

// OverrideStatus is the explicit administrative bypass of the transition
// table. It is audited under its own operation name rather than hiding
// behind a regular transition.
func (s *ReportService) OverrideStatus(act actor.Actor, reportID uint, req *dto.OverrideStatusRequest) (*models.Report, error) {
	target := models.Status(req.Status)
	if !target.Valid() {
		return nil, validationError("invalid status %q", req.Status)
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationError("override notes are required")
	}
	updates := map[string]interface{}{"status": target}
	if target == models.StatusResolved {
		updates["resolved_date"] = time.Now().UTC()
	} else {
		updates["resolved_date"] = nil
	}
	return s.apply(act, reportID, OpAdminOverride, nil, updates,
		"[admin override] status set to "+string(target)+": "+req.Notes, nil)
}

// GetByID loads a single report.
func (s *ReportService) GetByID(reportID uint) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return &report, nil
}

// priorityOrder sorts Emergency first and unknown/unset priorities last.
const priorityOrder = "CASE priority " +
	"WHEN 'Emergency' THEN 1 " +
	"WHEN 'High' THEN 2 " +
	"WHEN 'Medium' THEN 3 " +
	"WHEN 'Low' THEN 4 " +
	"ELSE 5 END, report_date DESC"

// ListByFilter returns one dashboard page of reports plus the total count.
func (s *ReportService) ListByFilter(f *dto.ReportFilter) ([]models.Report, int64, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := s.db.Model(&models.Report{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *f.AssignedTo)
	}
	if f.Priority != "" {
		query = query.Where("priority = ?", f.Priority)
	}
	if f.Barangay != "" {
		query = query.Where("barangay = ?", f.Barangay)
	}
	if f.DateFrom != nil {
		query = query.Where("report_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		query = query.Where("report_date <= ?", *f.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var reports []models.Report
	if err := query.Order(priorityOrder).
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, nil
}

// GetStatistics returns the dashboard counters. "Assigned" counts both
// Assigned and In Progress; "unassigned" is reports verified but not yet
// handed to anyone.
func (s *ReportService) GetStatistics() (*dto.StatisticsResponse, error) {
	stats := &dto.StatisticsResponse{}
	now := time.Now().UTC()
	overdueCutoff := now.Add(-s.overdueAfter)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Unassigned, s.db.Model(&models.Report{}).Where("status = ?", models.StatusVerified)},
		{&stats.Assigned, s.db.Model(&models.Report{}).Where("status IN ?", []models.Status{models.StatusAssigned, models.StatusInProgress})},
		{&stats.InProgress, s.db.Model(&models.Report{}).Where("status = ?", models.StatusInProgress)},
		{&stats.EmergencyPending, s.db.Model(&models.Report{}).Where("priority = ? AND status NOT IN ?", models.PriorityEmergency, []models.Status{models.StatusResolved, models.StatusRejected})},
		{&stats.HighPending, s.db.Model(&models.Report{}).Where("priority = ? AND status NOT IN ?", models.PriorityHigh, []models.Status{models.StatusResolved, models.StatusRejected})},
		{&stats.Overdue, s.db.Model(&models.Report{}).Where("status = ? AND assigned_date < ?", models.StatusAssigned, overdueCutoff)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute statistics: %w", err)
		}
	}
	return stats, nil
}

// GetHistory returns all audit-log entries for a report, newest first.
func (s *ReportService) GetHistory(reportID uint) ([]models.AssignmentLog, error) {
	var exists int64
	if err := s.db.Model(&models.Report{}).Where("id = ?", reportID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("failed to check report: %w", err)
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	var logs []models.AssignmentLog
	if err := s.db.Where("report_id = ?", reportID).
		Order("assignment_date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return logs, nil
}

// apply runs one transition in its own transaction and publishes the
// lifecycle event after commit.
func (s *ReportService) apply(act actor.Actor, reportID uint, op Operation, expected *models.Status, updates map[string]interface{}, note string, assignedTo *uuid.UUID) (*models.Report, error) {
	var updated *models.Report
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = s.applyInTx(tx, act, reportID, op, expected, updates, note, assignedTo)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(Event{
		Type:       eventFor(op, updated.Status),
		ReportID:   updated.ID,
		Status:     updated.Status,
		ActorID:    act.ID,
		AssignedTo: updated.AssignedTo,
		OccurredAt: time.Now().UTC(),
	})
	return updated, nil
}

// applyInTx is the shared transition core: load, precondition check,
// status-guarded update, audit-log append, reload. The status guard on the
// UPDATE means a concurrent commit between our read and write surfaces as
// ErrConflict instead of silently clobbering state.
func (s *ReportService) applyInTx(tx *gorm.DB, act actor.Actor, reportID uint, op Operation, expected *models.Status, updates map[string]interface{}, note string, assignedTo *uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := tx.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	if expected != nil && *expected != report.Status {
		return nil, ErrConflict
	}
	if !canApply(op, report.Status) {
		return nil, invalidTransition(op, report.Status)
	}

	result := tx.Model(&models.Report{}).
		Where("id = ? AND status = ?", report.ID, report.Status).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrConflict
	}

	entry := models.AssignmentLog{
		ReportID:       report.ID,
		AssignedBy:     act.ID,
		AssignedByName: act.Name,
		AssignedTo:     assignedTo,
		AssignmentDate: time.Now().UTC(),
		Notes:          note,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append assignment log: %w", err)
	}

	var reloaded models.Report
	if err := tx.First(&reloaded, report.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload report: %w", err)
	}
	return &reloaded, nil
}

// assignableUser enforces the invariant that assigned_to references a
// verified EMPLOYEE, ADMIN, or TANOD.
func (s *ReportService) assignableUser(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: assignee %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load assignee: %w", err)
	}
	if !user.Role.Assignable() {
		return nil, validationError("assignee role %q cannot receive assignments", user.Role)
	}
	if !user.Verified {
		return nil, validationError("assignee account is not verified")
	}
	return &user, nil
}

func expectedStatus(s *string) *models.Status {
	if s == nil || *s == "" {
		return nil
	}
	status := models.Status(*s)
	return &status
}
