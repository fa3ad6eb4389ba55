package services

import (
	"testing"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	citizen := seedUser(t, db, "citizen", models.RoleUser, true)

	created, err := svc.Create(asActor(citizen), &dto.CreateReportRequest{
		Location:      "Km 4 Marcos Highway",
		Barangay:      "San Roque",
		RoadType:      "Major Road",
		ConditionType: "Pothole",
		Severity:      "Emergency",
		Description:   "Deep pothole near the school crossing",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Km 4 Marcos Highway", got.Location)
	assert.Equal(t, "San Roque", got.Barangay)
	assert.Equal(t, models.RoadTypeMajor, got.RoadType)
	assert.Equal(t, models.ConditionPothole, got.ConditionType)
	assert.Equal(t, models.SeverityEmergency, got.Severity)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.Priority)
	assert.Equal(t, citizen.ID, *got.ReporterID)
	assert.Equal(t, models.RoleUser, got.ReporterRole)
}

func TestCreateValidatesEnums(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	citizen := seedUser(t, db, "citizen", models.RoleUser, true)

	_, err := svc.Create(asActor(citizen), &dto.CreateReportRequest{
		Location:      "somewhere",
		Barangay:      "San Roque",
		RoadType:      "Freeway",
		ConditionType: "Pothole",
		Severity:      "Medium",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(asActor(citizen), &dto.CreateReportRequest{
		Barangay:      "San Roque",
		RoadType:      "Major Road",
		ConditionType: "Pothole",
		Severity:      "Medium",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerifyFromPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, nil)

	verified, err := svc.Verify(asActor(admin), report.ID, &dto.VerifyRequest{Priority: "High"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedDate)
	assert.False(t, verified.VerifiedDate.Before(report.CreatedAt.Add(-time.Second)))
	require.NotNil(t, verified.Priority)
	assert.Equal(t, models.PriorityHigh, *verified.Priority)
	assert.Equal(t, admin.ID, *verified.VerifiedBy)
	assert.Equal(t, int64(1), logCount(t, db, report.ID))
}

func TestVerifyRejectsBadPriority(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, nil)

	_, err := svc.Verify(asActor(admin), report.ID, &dto.VerifyRequest{Priority: "Urgent"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int64(0), logCount(t, db, report.ID))
}

func TestResolveOnlyFromAssignedOrInProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, nil) // Pending

	_, err := svc.Resolve(asActor(admin), report.ID, &dto.NotesRequest{Notes: "filled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.GetByID(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, int64(0), logCount(t, db, report.ID))
}

func TestResolveSetsResolutionFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	report := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusInProgress
		r.AssignedTo = &employee.ID
		r.AssignedDate = timePtr(time.Now().UTC())
	})

	resolved, err := svc.Resolve(asActor(admin), report.ID, &dto.NotesRequest{Notes: "patched with asphalt"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resolved.Status)
	assert.Equal(t, "patched with asphalt", resolved.ResolutionNotes)
	require.NotNil(t, resolved.ResolvedDate)
}

func TestRejectKeepsResolutionFieldsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, nil)

	_, err := svc.Reject(asActor(admin), report.ID, &dto.NotesRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	rejected, err := svc.Reject(asActor(admin), report.ID, &dto.NotesRequest{Notes: "duplicate of an earlier report"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "duplicate of an earlier report", rejected.FollowUpNotes)
	assert.Empty(t, rejected.ResolutionNotes)
	assert.Nil(t, rejected.ResolvedDate)
}

func TestAssignEnforcesAssigneeInvariant(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	citizen := seedUser(t, db, "citizen", models.RoleUser, true)
	unverified := seedUser(t, db, "newhire", models.RoleEmployee, false)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	report := seedReport(t, db, func(r *models.Report) { r.Status = models.StatusVerified })

	_, err := svc.Assign(asActor(admin), report.ID, &dto.AssignRequest{
		AssignedTo: citizen.ID, Priority: "High",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Assign(asActor(admin), report.ID, &dto.AssignRequest{
		AssignedTo: unverified.ID, Priority: "High",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Assign(asActor(admin), report.ID, &dto.AssignRequest{
		AssignedTo: uuid.New(), Priority: "High",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	assigned, err := svc.Assign(asActor(admin), report.ID, &dto.AssignRequest{
		AssignedTo: employee.ID, Priority: "High", Notes: "take the grader",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, assigned.Status)
	assert.Equal(t, employee.ID, *assigned.AssignedTo)
	require.NotNil(t, assigned.AssignedDate)

	var entry models.AssignmentLog
	require.NoError(t, db.Where("report_id = ?", report.ID).First(&entry).Error)
	assert.Equal(t, admin.ID, entry.AssignedBy)
	assert.Equal(t, employee.ID, *entry.AssignedTo)
	assert.Equal(t, "take the grader", entry.Notes)
}

func TestReassignRequiresNotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	other := seedUser(t, db, "other", models.RoleEmployee, true)
	report := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusAssigned
		r.AssignedTo = &employee.ID
		r.AssignedDate = timePtr(time.Now().UTC())
	})

	_, err := svc.Reassign(asActor(admin), report.ID, &dto.ReassignRequest{AssignedTo: other.ID})
	assert.ErrorIs(t, err, ErrValidation)

	reassigned, err := svc.Reassign(asActor(admin), report.ID, &dto.ReassignRequest{
		AssignedTo: other.ID, Notes: "original assignee on leave",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, reassigned.Status)
	assert.Equal(t, other.ID, *reassigned.AssignedTo)
}

func TestUpdateStatusToInProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	report := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusAssigned
		r.AssignedTo = &employee.ID
		r.AssignedDate = timePtr(time.Now().UTC().Add(-time.Hour))
	})

	updated, err := svc.UpdateStatus(asActor(employee), report.ID, &dto.UpdateStatusRequest{Status: "In Progress"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)
	require.NotNil(t, updated.AssignedDate)
	assert.True(t, updated.AssignedDate.After(time.Now().UTC().Add(-time.Minute)))

	// other targets go through their dedicated operations
	_, err = svc.UpdateStatus(asActor(employee), report.ID, &dto.UpdateStatusRequest{Status: "Resolved"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetDispatchOnlyInProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	report := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusAssigned
		r.AssignedTo = &employee.ID
	})

	_, err := svc.SetDispatch(asActor(employee), report.ID, &dto.NotesRequest{Notes: "crew en route"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, db.Model(&models.Report{}).Where("id = ?", report.ID).
		Update("status", models.StatusInProgress).Error)

	updated, err := svc.SetDispatch(asActor(employee), report.ID, &dto.NotesRequest{Notes: "crew en route"})
	require.NoError(t, err)
	assert.Equal(t, "crew en route", updated.DispatchNotes)
	require.NotNil(t, updated.DispatchTime)
	assert.Equal(t, models.StatusInProgress, updated.Status)
}

func TestUpdatePriorityFromAnyStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.ResolvedDate = timePtr(time.Now().UTC())
	})

	updated, err := svc.UpdatePriority(asActor(admin), report.ID, &dto.UpdatePriorityRequest{Priority: "Emergency"})
	require.NoError(t, err)
	require.NotNil(t, updated.Priority)
	assert.Equal(t, models.PriorityEmergency, *updated.Priority)
	assert.Equal(t, models.StatusResolved, updated.Status)
}

func TestTanodFollowUp(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	tanod := seedUser(t, db, "tanod", models.RoleTanod, true)
	report := seedReport(t, db, func(r *models.Report) { r.Status = models.StatusAssigned })

	_, err := svc.AssignTanodFollowUp(asActor(admin), report.ID, &dto.TanodFollowUpRequest{
		TanodID: employee.ID, Notes: "monitor overnight",
	})
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.AssignTanodFollowUp(asActor(admin), report.ID, &dto.TanodFollowUpRequest{
		TanodID: tanod.ID, Notes: "monitor overnight",
	})
	require.NoError(t, err)
	assert.Equal(t, tanod.ID, *updated.TanodFollowUp)
	assert.Equal(t, "monitor overnight", updated.FollowUpNotes)
}

func TestExpectedStatusConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, nil) // Pending

	stale := "Verified"
	_, err := svc.Verify(asActor(admin), report.ID, &dto.VerifyRequest{
		Priority: "High", ExpectedStatus: &stale,
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(0), logCount(t, db, report.ID))
}

func TestBulkAssignIsAtomic(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)

	r1 := seedReport(t, db, func(r *models.Report) { r.Status = models.StatusVerified })
	r2 := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.ResolvedDate = timePtr(time.Now().UTC())
	})
	r3 := seedReport(t, db, func(r *models.Report) { r.Status = models.StatusVerified })

	_, err := svc.BulkAssign(asActor(admin), &dto.BulkAssignRequest{
		ReportIDs:  []uint{r1.ID, r2.ID, r3.ID},
		AssignedTo: employee.ID,
		Priority:   "High",
		Notes:      "pothole patching batch",
	})
	require.ErrorIs(t, err, ErrInvalidTransition)

	for _, id := range []uint{r1.ID, r3.ID} {
		got, err := svc.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, models.StatusVerified, got.Status)
		assert.Nil(t, got.AssignedTo)
	}
	assert.Equal(t, int64(0), logCount(t, db, 0))
}

func TestBulkAssignHappyPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)

	r1 := seedReport(t, db, func(r *models.Report) { r.Status = models.StatusVerified })
	r2 := seedReport(t, db, func(r *models.Report) { r.Status = models.StatusVerified })

	reports, err := svc.BulkAssign(asActor(admin), &dto.BulkAssignRequest{
		ReportIDs:  []uint{r1.ID, r2.ID},
		AssignedTo: employee.ID,
		Priority:   "Medium",
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, models.StatusAssigned, r.Status)
		assert.Equal(t, employee.ID, *r.AssignedTo)
		assert.Equal(t, int64(1), logCount(t, db, r.ID))
	}
}

func TestEveryMutationAppendsOneLogEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	report := seedReport(t, db, nil)

	steps := []func() error{
		func() error {
			_, err := svc.Verify(asActor(admin), report.ID, &dto.VerifyRequest{Priority: "High"})
			return err
		},
		func() error {
			_, err := svc.Assign(asActor(admin), report.ID, &dto.AssignRequest{AssignedTo: employee.ID, Priority: "High"})
			return err
		},
		func() error {
			_, err := svc.UpdateStatus(asActor(employee), report.ID, &dto.UpdateStatusRequest{Status: "In Progress"})
			return err
		},
		func() error {
			_, err := svc.SetDispatch(asActor(employee), report.ID, &dto.NotesRequest{Notes: "crew dispatched"})
			return err
		},
		func() error {
			_, err := svc.Resolve(asActor(employee), report.ID, &dto.NotesRequest{Notes: "done"})
			return err
		},
	}

	for i, step := range steps {
		var before models.Report
		require.NoError(t, db.First(&before, report.ID).Error)

		require.NoError(t, step())
		assert.Equal(t, int64(i+1), logCount(t, db, report.ID))

		var latest models.AssignmentLog
		require.NoError(t, db.Where("report_id = ?", report.ID).
			Order("id DESC").First(&latest).Error)
		assert.Equal(t, report.ID, latest.ReportID)
		assert.False(t, latest.AssignmentDate.Before(before.UpdatedAt.Add(-time.Second)))
	}
}

func TestOverrideStatusBypassesTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	report := seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.ResolvedDate = timePtr(time.Now().UTC())
	})

	_, err := svc.OverrideStatus(asActor(admin), report.ID, &dto.OverrideStatusRequest{Status: "Pending"})
	assert.ErrorIs(t, err, ErrValidation)

	reopened, err := svc.OverrideStatus(asActor(admin), report.ID, &dto.OverrideStatusRequest{
		Status: "Pending", Notes: "resolved by mistake",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reopened.Status)
	assert.Nil(t, reopened.ResolvedDate)

	var entry models.AssignmentLog
	require.NoError(t, db.Where("report_id = ?", report.ID).Order("id DESC").First(&entry).Error)
	assert.Contains(t, entry.Notes, "[admin override]")
}

func TestGetStatisticsFixture(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	now := time.Now().UTC()

	for i := 0; i < 3; i++ {
		seedReport(t, db, func(r *models.Report) {
			r.Status = models.StatusVerified
			r.Priority = priorityPtr(models.PriorityHigh)
		})
	}
	// two fresh, one 4 days old (overdue), one 2 days old (not overdue)
	assignedAges := []time.Duration{time.Hour, 6 * time.Hour, 96 * time.Hour, 48 * time.Hour}
	for _, age := range assignedAges {
		assignedAt := now.Add(-age)
		seedReport(t, db, func(r *models.Report) {
			r.Status = models.StatusAssigned
			r.Priority = priorityPtr(models.PriorityEmergency)
			r.AssignedTo = &employee.ID
			r.AssignedDate = &assignedAt
		})
	}
	for i := 0; i < 2; i++ {
		seedReport(t, db, func(r *models.Report) {
			r.Status = models.StatusInProgress
			r.AssignedTo = &employee.ID
			r.AssignedDate = &now
		})
	}
	seedReport(t, db, func(r *models.Report) {
		r.Status = models.StatusResolved
		r.Priority = priorityPtr(models.PriorityEmergency)
		r.ResolvedDate = &now
	})

	stats, err := svc.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Unassigned)
	assert.Equal(t, int64(6), stats.Assigned)
	assert.Equal(t, int64(2), stats.InProgress)
	assert.Equal(t, int64(4), stats.EmergencyPending)
	assert.Equal(t, int64(3), stats.HighPending)
	assert.Equal(t, int64(1), stats.Overdue)
}

func TestListByFilterOrderingAndPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	base := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)

	mk := func(barangay string, status models.Status, priority models.Priority, day int) *models.Report {
		return seedReport(t, db, func(r *models.Report) {
			r.Barangay = barangay
			r.Status = status
			r.Priority = priorityPtr(priority)
			r.ReportDate = base.AddDate(0, 0, day)
		})
	}

	low := mk("X", models.StatusAssigned, models.PriorityLow, 9)
	emergencyOld := mk("X", models.StatusAssigned, models.PriorityEmergency, 1)
	medium := mk("X", models.StatusAssigned, models.PriorityMedium, 5)
	emergencyNew := mk("X", models.StatusAssigned, models.PriorityEmergency, 3)
	mk("Y", models.StatusAssigned, models.PriorityEmergency, 2) // other barangay
	mk("X", models.StatusVerified, models.PriorityEmergency, 2) // other status

	reports, total, err := svc.ListByFilter(&dto.ReportFilter{
		Status: "Assigned", Barangay: "X", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, reports, 4)
	assert.Equal(t, emergencyNew.ID, reports[0].ID)
	assert.Equal(t, emergencyOld.ID, reports[1].ID)
	assert.Equal(t, medium.ID, reports[2].ID)
	assert.Equal(t, low.ID, reports[3].ID)

	// (page-1)*pageSize offset math
	pageTwo, total, err := svc.ListByFilter(&dto.ReportFilter{
		Status: "Assigned", Barangay: "X", Page: 2, PageSize: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, pageTwo, 1)
	assert.Equal(t, low.ID, pageTwo[0].ID)
}

func TestListByFilterDateRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	inRange := seedReport(t, db, func(r *models.Report) { r.ReportDate = base.AddDate(0, 0, 5) })
	seedReport(t, db, func(r *models.Report) { r.ReportDate = base.AddDate(0, 0, 20) })

	from := base
	to := base.AddDate(0, 0, 10)
	reports, total, err := svc.ListByFilter(&dto.ReportFilter{DateFrom: &from, DateTo: &to, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, reports, 1)
	assert.Equal(t, inRange.ID, reports[0].ID)
}

func TestGetHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)
	employee := seedUser(t, db, "employee", models.RoleEmployee, true)
	report := seedReport(t, db, nil)

	_, err := svc.Verify(asActor(admin), report.ID, &dto.VerifyRequest{Priority: "Low"})
	require.NoError(t, err)
	_, err = svc.Assign(asActor(admin), report.ID, &dto.AssignRequest{AssignedTo: employee.ID, Priority: "Low"})
	require.NoError(t, err)

	history, err := svc.GetHistory(report.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.False(t, history[0].AssignmentDate.Before(history[1].AssignmentDate))
	require.NotNil(t, history[0].AssignedTo)
	assert.Equal(t, employee.ID, *history[0].AssignedTo)

	_, err = svc.GetHistory(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMutationsOnMissingReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db, nil, 0)
	admin := seedUser(t, db, "admin", models.RoleAdmin, true)

	_, err := svc.Verify(asActor(admin), 424242, &dto.VerifyRequest{Priority: "High"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOverdueDerivation(t *testing.T) {
	now := time.Now().UTC()
	fourDaysAgo := now.Add(-4 * 24 * time.Hour)
	twoDaysAgo := now.Add(-2 * 24 * time.Hour)

	overdue := models.Report{Status: models.StatusAssigned, AssignedDate: &fourDaysAgo}
	fresh := models.Report{Status: models.StatusAssigned, AssignedDate: &twoDaysAgo}
	resolved := models.Report{Status: models.StatusResolved, AssignedDate: &fourDaysAgo}

	assert.True(t, overdue.Overdue(now, DefaultOverdueAfter))
	assert.False(t, fresh.Overdue(now, DefaultOverdueAfter))
	assert.False(t, resolved.Overdue(now, DefaultOverdueAfter))
}
