package wagerun

import (
	"fmt"
	"math"

	"github.com/construxhq/ops-backend-go/internal/domain/attendance"
	"github.com/construxhq/ops-backend-go/internal/domain/employee"
	domain "github.com/construxhq/ops-backend-go/internal/domain/wagerun"
)

// varianceTolerance is the absolute hour difference below which no audit
// note is written.
const varianceTolerance = 0.01

// reconcileVariance trues up the projection a prior finalized run paid
// out against what the employee actually worked in that run's projection
// window. priorWindowRecords must already be restricted to
// [prior.RunDate+1, prior.EndDate] for this employee.
//
// Finalized runs are immutable, so the correction is carried into the new
// run instead of editing the old one.
func reconcileVariance(emp employee.Employee, prior *domain.WageRun, priorWindowRecords []attendance.Record, isHoliday holidayFn) (float64, string) {
	if prior == nil {
		return 0, ""
	}
	line := prior.LineFor(emp.ID)
	if line == nil || line.ProjectedHours.IsZero() {
		// Nothing was projected, nothing to true up.
		return 0, ""
	}

	var worked float64
	for _, rec := range priorWindowRecords {
		worked += computeDailyHours(rec, emp, isHoliday).worked()
	}

	projected, _ := line.ProjectedHours.Float64()
	variance := worked - projected
	if math.Abs(variance) <= varianceTolerance {
		return variance, ""
	}

	note := fmt.Sprintf("Adj from %s: Paid %.1f, Worked %.1f",
		prior.EndDate.Format("2006-01-02"), projected, worked)
	return variance, note
}
