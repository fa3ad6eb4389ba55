package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/LunaaVerse/ttm-sub002/internal/dto"
	"github.com/LunaaVerse/ttm-sub002/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService produces the historical rollups and the budget estimate
// for the analytics dashboard. Rollups are computed over one filtered
// projection query so the same code path serves every backing store.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// histogram bucket upper bounds in days, with the matching labels.
var resolutionBuckets = []struct {
	label   string
	maxDays float64
}{
	{"<=1 day", 1},
	{"1-3 days", 3},
	{"4-7 days", 7},
	{"1-2 weeks", 14},
	{"2-4 weeks", 28},
	{">1 month", -1},
}

func (s *AnalyticsService) Overview(f *dto.AnalyticsFilter) (*dto.AnalyticsResponse, error) {
	if f.Year <= 0 {
		return nil, validationError("year is required")
	}
	if f.Month < 0 || f.Month > 12 {
		return nil, validationError("invalid month %d", f.Month)
	}

	yearStart := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	query := s.db.Model(&models.Report{}).
		Where("report_date >= ? AND report_date < ?", yearStart, yearEnd)
	if f.Month > 0 {
		monthStart := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("report_date >= ? AND report_date < ?", monthStart, monthStart.AddDate(0, 1, 0))
	}
	if f.Barangay != "" {
		query = query.Where("barangay = ?", f.Barangay)
	}
	if f.ConditionType != "" {
		query = query.Where("condition_type = ?", f.ConditionType)
	}
	if f.Severity != "" {
		query = query.Where("severity = ?", f.Severity)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to load reports for analytics: %w", err)
	}

	tanods, err := s.tanodDirectory()
	if err != nil {
		return nil, err
	}
	costs, err := s.costTable()
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsResponse{Year: f.Year, Month: f.Month}
	s.rollup(resp, reports, tanods, costs)
	return resp, nil
}

func (s *AnalyticsService) rollup(resp *dto.AnalyticsResponse, reports []models.Report, tanods map[uuid.UUID]string, costs map[models.ConditionType]int64) {
	monthly := make(map[int]*dto.MonthlyCount)
	byBarangay := make(map[string]int64)
	byRole := make(map[string]int64)
	histogram := make([]int64, len(resolutionBuckets))

	type condAgg struct {
		count         int64
		resolved      int64
		resolvedDays  float64
	}
	byCondition := make(map[models.ConditionType]*condAgg)

	type tanodAgg struct {
		assigned     int64
		resolved     int64
		resolvedDays float64
	}
	byTanod := make(map[uuid.UUID]*tanodAgg)

	var resolvedCount int64
	var resolvedDaysSum float64

	for i := range reports {
		r := &reports[i]
		resp.Totals.Total++

		m := int(r.ReportDate.Month())
		mc := monthly[m]
		if mc == nil {
			mc = &dto.MonthlyCount{Month: m}
			monthly[m] = mc
		}
		mc.Total++

		byBarangay[r.Barangay]++
		byRole[string(r.ReporterRole)]++

		ca := byCondition[r.ConditionType]
		if ca == nil {
			ca = &condAgg{}
			byCondition[r.ConditionType] = ca
		}
		ca.count++

		if r.AssignedTo != nil {
			if _, ok := tanods[*r.AssignedTo]; ok {
				ta := byTanod[*r.AssignedTo]
				if ta == nil {
					ta = &tanodAgg{}
					byTanod[*r.AssignedTo] = ta
				}
				ta.assigned++
				if r.Status == models.StatusResolved && r.ResolvedDate != nil {
					ta.resolved++
					ta.resolvedDays += resolutionDays(r)
				}
			}
		}

		switch r.Status {
		case models.StatusResolved:
			resp.Totals.Resolved++
			mc.Resolved++
			if r.ResolvedDate != nil {
				days := resolutionDays(r)
				resolvedCount++
				resolvedDaysSum += days
				ca.resolved++
				ca.resolvedDays += days
				histogram[bucketIndex(days)]++
			}
		case models.StatusRejected:
			// closed without action; not pending, not resolved
		default:
			resp.Totals.Pending++
		}
	}

	if resolvedCount > 0 {
		resp.Totals.AvgResolutionDays = resolvedDaysSum / float64(resolvedCount)
	}

	for m := 1; m <= 12; m++ {
		if mc, ok := monthly[m]; ok {
			resp.MonthlyTrend = append(resp.MonthlyTrend, *mc)
		} else {
			resp.MonthlyTrend = append(resp.MonthlyTrend, dto.MonthlyCount{Month: m})
		}
	}

	for name, count := range byBarangay {
		resp.ByBarangay = append(resp.ByBarangay, dto.NameCount{Name: name, Count: count})
	}
	sortNameCounts(resp.ByBarangay)

	for role, count := range byRole {
		resp.ByReporterRole = append(resp.ByReporterRole, dto.NameCount{Name: role, Count: count})
	}
	sortNameCounts(resp.ByReporterRole)

	for cond, agg := range byCondition {
		stat := dto.ConditionStats{ConditionType: string(cond), Count: agg.count}
		if agg.resolved > 0 {
			stat.AvgResolutionDays = agg.resolvedDays / float64(agg.resolved)
		}
		resp.ByCondition = append(resp.ByCondition, stat)
	}
	sort.Slice(resp.ByCondition, func(i, j int) bool {
		if resp.ByCondition[i].Count != resp.ByCondition[j].Count {
			return resp.ByCondition[i].Count > resp.ByCondition[j].Count
		}
		return resp.ByCondition[i].ConditionType < resp.ByCondition[j].ConditionType
	})

	for id, agg := range byTanod {
		perf := dto.TanodPerformance{
			TanodID:  id,
			Name:     tanods[id],
			Assigned: agg.assigned,
			Resolved: agg.resolved,
		}
		if agg.resolved > 0 {
			perf.AvgResolutionDays = agg.resolvedDays / float64(agg.resolved)
		}
		resp.TanodPerformance = append(resp.TanodPerformance, perf)
	}
	sort.Slice(resp.TanodPerformance, func(i, j int) bool {
		if resp.TanodPerformance[i].Assigned != resp.TanodPerformance[j].Assigned {
			return resp.TanodPerformance[i].Assigned > resp.TanodPerformance[j].Assigned
		}
		return resp.TanodPerformance[i].Name < resp.TanodPerformance[j].Name
	})

	for i, bucket := range resolutionBuckets {
		resp.ResolutionHistogram = append(resp.ResolutionHistogram, dto.HistogramBucket{
			Bucket: bucket.label,
			Count:  histogram[i],
		})
	}

	for cond, agg := range byCondition {
		unit, ok := costs[cond]
		if !ok {
			unit = models.DefaultUnitCost
		}
		line := dto.CostLine{
			ConditionType: string(cond),
			UnitCost:      unit,
			Count:         agg.count,
			Subtotal:      unit * agg.count,
		}
		resp.CostEstimate.Lines = append(resp.CostEstimate.Lines, line)
		resp.CostEstimate.Total += line.Subtotal
	}
	sort.Slice(resp.CostEstimate.Lines, func(i, j int) bool {
		return resp.CostEstimate.Lines[i].ConditionType < resp.CostEstimate.Lines[j].ConditionType
	})
}

func (s *AnalyticsService) tanodDirectory() (map[uuid.UUID]string, error) {
	var users []models.User
	if err := s.db.Where("role = ?", models.RoleTanod).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load tanods: %w", err)
	}
	out := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		out[u.ID] = u.Name
	}
	return out, nil
}

func (s *AnalyticsService) costTable() (map[models.ConditionType]int64, error) {
	var rows []models.ConditionCost
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load cost table: %w", err)
	}
	out := make(map[models.ConditionType]int64, len(rows))
	for _, row := range rows {
		out[row.ConditionType] = row.UnitCost
	}
	return out, nil
}

// resolutionDays measures from filing to resolution in fractional days.
func resolutionDays(r *models.Report) float64 {
	return r.ResolvedDate.Sub(r.CreatedAt).Hours() / 24
}

func bucketIndex(days float64) int {
	for i, bucket := range resolutionBuckets {
		if bucket.maxDays < 0 || days <= bucket.maxDays {
			return i
		}
	}
	return len(resolutionBuckets) - 1
}

func sortNameCounts(list []dto.NameCount) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count != list[j].Count {
			return list[i].Count > list[j].Count
		}
		return list[i].Name < list[j].Name
	})
}
