package wagerun

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/construxhq/ops-backend-go/internal/domain/attendance"
	"github.com/construxhq/ops-backend-go/internal/domain/calendar"
	"github.com/construxhq/ops-backend-go/internal/domain/employee"
	"github.com/construxhq/ops-backend-go/internal/domain/loan"
	domain "github.com/construxhq/ops-backend-go/internal/domain/wagerun"
	"github.com/construxhq/ops-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WageRunServiceImpl struct {
	wageRunRepo    domain.WageRunRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loanRepo       loan.LoanRepository
	holidayRepo    calendar.HolidayRepository
	clock          clock.Clock
}

func NewWageRunService(
	wageRunRepo domain.WageRunRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loanRepo loan.LoanRepository,
	holidayRepo calendar.HolidayRepository,
	clk clock.Clock,
) domain.WageRunService {
	return &WageRunServiceImpl{
		wageRunRepo:    wageRunRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loanRepo:       loanRepo,
		holidayRepo:    holidayRepo,
		clock:          clk,
	}
}

var (
	rate15 = decimal.NewFromFloat(1.5)
	rate20 = decimal.NewFromInt(2)
)

func (s *WageRunServiceImpl) GenerateDraft(ctx context.Context, req domain.GenerateWageRunRequest) (domain.WageRunResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.WageRunResponse{}, err
	}

	start, end, err := req.Period()
	if err != nil {
		return domain.WageRunResponse{}, err
	}
	runDate := dateOnly(s.clock.Now())

	rateType := domain.RateTypeForPayType(req.PayType)
	employees, err := s.employeeRepo.GetActiveByRateType(ctx, rateType)
	if err != nil {
		return domain.WageRunResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	// Attendance for the attended part of the period.
	var records []attendance.Record
	if !runDate.Before(start) {
		records, err = s.attendanceRepo.ListBetween(ctx, start, runDate)
		if err != nil {
			return domain.WageRunResponse{}, fmt.Errorf("failed to get attendance: %w", err)
		}
	}

	loans, err := s.loanRepo.ListActiveWithBalance(ctx)
	if err != nil {
		return domain.WageRunResponse{}, fmt.Errorf("failed to get loans: %w", err)
	}

	prior, err := s.wageRunRepo.GetLastFinalizedEndingBefore(ctx, start)
	if err != nil {
		return domain.WageRunResponse{}, fmt.Errorf("failed to get prior run: %w", err)
	}

	// Actual attendance inside the prior run's projection window, for
	// variance reconciliation. The holiday span must also cover the
	// projection window, which starts at runDate+1 and can precede the
	// period when the run is generated early.
	var priorRecords []attendance.Record
	holidayFrom := minTime(start, runDate.AddDate(0, 0, 1))
	holidayTo := maxTime(end, runDate)
	if prior != nil {
		priorStart := prior.RunDate.AddDate(0, 0, 1)
		if !priorStart.After(prior.EndDate) {
			priorRecords, err = s.attendanceRepo.ListBetween(ctx, priorStart, prior.EndDate)
			if err != nil {
				return domain.WageRunResponse{}, fmt.Errorf("failed to get prior-window attendance: %w", err)
			}
			holidayFrom = minTime(holidayFrom, priorStart)
		}
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, holidayFrom, holidayTo)
	if err != nil {
		return domain.WageRunResponse{}, fmt.Errorf("failed to get public holidays: %w", err)
	}
	isHoliday := holidaySet(holidays)

	// Overlapping drafts are permitted but worth flagging; there is no
	// uniqueness constraint across periods.
	if existing, err := s.wageRunRepo.ListOverlapping(ctx, start, end); err == nil && len(existing) > 0 {
		slog.Warn("generating wage run over a period that overlaps existing runs",
			"start_date", req.StartDate, "end_date", req.EndDate, "existing_count", len(existing))
	}

	knownEmployees := make(map[string]bool, len(employees))
	for _, emp := range employees {
		knownEmployees[emp.ID] = true
	}

	recordsByEmployee := make(map[string][]attendance.Record)
	for _, rec := range records {
		if !knownEmployees[rec.EmployeeID] {
			// Referential integrity should make this impossible; tolerate
			// and skip rather than fail the whole run.
			slog.Warn("attendance record references employee outside the run's employee set",
				"record_id", rec.ID, "employee_id", rec.EmployeeID)
			continue
		}
		recordsByEmployee[rec.EmployeeID] = append(recordsByEmployee[rec.EmployeeID], rec)
	}

	priorRecordsByEmployee := make(map[string][]attendance.Record)
	for _, rec := range priorRecords {
		priorRecordsByEmployee[rec.EmployeeID] = append(priorRecordsByEmployee[rec.EmployeeID], rec)
	}

	loansByEmployee := make(map[string][]loan.EmployeeLoan)
	for _, l := range loans {
		loansByEmployee[l.EmployeeID] = append(loansByEmployee[l.EmployeeID], l)
	}

	sort.Slice(employees, func(i, j int) bool {
		if employees[i].FullName != employees[j].FullName {
			return employees[i].FullName < employees[j].FullName
		}
		return employees[i].ID < employees[j].ID
	})

	runID := uuid.NewString()
	lines := make([]domain.WageRunLine, 0, len(employees))
	for _, emp := range employees {
		line := s.buildLine(runID, emp, lineInputs{
			records:      recordsByEmployee[emp.ID],
			priorRecords: priorRecordsByEmployee[emp.ID],
			loans:        loansByEmployee[emp.ID],
			prior:        prior,
			runDate:      runDate,
			periodEnd:    end,
			isHoliday:    isHoliday,
		})
		lines = append(lines, line)
	}

	run := domain.WageRun{
		ID:        runID,
		StartDate: start,
		EndDate:   end,
		RunDate:   runDate,
		PayType:   req.PayType,
		Status:    domain.StatusDraft,
		Notes:     req.Notes,
		Lines:     lines,
	}

	created, err := s.wageRunRepo.CreateRun(ctx, run)
	if err != nil {
		return domain.WageRunResponse{}, fmt.Errorf("failed to create wage run: %w", err)
	}

	return mapToRunResponse(created, true), nil
}

type lineInputs struct {
	records      []attendance.Record
	priorRecords []attendance.Record
	loans        []loan.EmployeeLoan
	prior        *domain.WageRun
	runDate      time.Time
	periodEnd    time.Time
	isHoliday    holidayFn
}

// buildLine folds one employee's inputs into an immutable line snapshot.
// All hour and money values are rounded to 2 decimal places here, at the
// point of storage, never mid-calculation.
func (s *WageRunServiceImpl) buildLine(runID string, emp employee.Employee, in lineInputs) domain.WageRunLine {
	var acc dailyHours
	for _, rec := range in.records {
		day := computeDailyHours(rec, emp, in.isHoliday)
		acc.Normal += day.Normal
		acc.Overtime15 += day.Overtime15
		acc.Overtime20 += day.Overtime20
		acc.Lunch += day.Lunch
	}

	projected := projectHours(emp, in.runDate, in.periodEnd, in.isHoliday)
	variance, varianceNote := reconcileVariance(emp, in.prior, in.priorRecords, in.isHoliday)
	deduction := loanDeduction(in.loans, in.runDate)

	normal := roundHours(acc.Normal)
	ot15 := roundHours(acc.Overtime15)
	ot20 := roundHours(acc.Overtime20)
	lunch := roundHours(acc.Lunch)
	projectedDec := roundHours(projected)
	varianceDec := roundHours(variance)

	rate := emp.HourlyRate
	total := normal.Add(projectedDec).Add(varianceDec).Mul(rate).
		Add(ot15.Mul(rate).Mul(rate15)).
		Add(ot20.Mul(rate).Mul(rate20)).
		Round(2)

	var notes *string
	if varianceNote != "" {
		notes = &varianceNote
	}

	branchName := ""
	if emp.BranchName != nil {
		branchName = *emp.BranchName
	}

	return domain.WageRunLine{
		ID:              uuid.NewString(),
		WageRunID:       runID,
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		BranchName:      branchName,
		HourlyRate:      rate,
		NormalHours:     normal,
		Overtime15Hours: ot15,
		Overtime20Hours: ot20,
		LunchHours:      lunch,
		ProjectedHours:  projectedDec,
		VarianceHours:   varianceDec,
		VarianceNotes:   notes,
		LoanDeduction:   deduction.Round(2),
		TotalWage:       total,
	}
}

func (s *WageRunServiceImpl) Get(ctx context.Context, id string) (domain.WageRunResponse, error) {
	run, err := s.wageRunRepo.GetByID(ctx, id)
	if err != nil {
		return domain.WageRunResponse{}, err
	}
	return mapToRunResponse(run, true), nil
}

func (s *WageRunServiceImpl) List(ctx context.Context, filter domain.WageRunFilter) (domain.ListWageRunResponse, error) {
	runs, totalCount, err := s.wageRunRepo.List(ctx, filter)
	if err != nil {
		return domain.ListWageRunResponse{}, err
	}

	result := make([]domain.WageRunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, mapToRunResponse(run, false))
	}

	return domain.ListWageRunResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *WageRunServiceImpl) Finalize(ctx context.Context, id string) error {
	run, err := s.wageRunRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if run.Status == domain.StatusFinalized {
		return domain.ErrWageRunFinalized
	}
	return s.wageRunRepo.Finalize(ctx, id, s.clock.Now())
}

func (s *WageRunServiceImpl) Delete(ctx context.Context, id string) error {
	run, err := s.wageRunRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if run.Status == domain.StatusFinalized {
		return domain.ErrWageRunFinalized
	}
	return s.wageRunRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func holidaySet(holidays []calendar.PublicHoliday) holidayFn {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Date.Format("2006-01-02")] = struct{}{}
	}
	return func(date time.Time) bool {
		_, ok := set[date.Format("2006-01-02")]
		return ok
	}
}

func roundHours(hours float64) decimal.Decimal {
	return decimal.NewFromFloat(hours).Round(2)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToRunResponse(run domain.WageRun, withLines bool) domain.WageRunResponse {
	var finalizedAtStr *string
	if run.FinalizedAt != nil {
		str := run.FinalizedAt.Format(time.RFC3339)
		finalizedAtStr = &str
	}

	resp := domain.WageRunResponse{
		ID:          run.ID,
		StartDate:   run.StartDate.Format("2006-01-02"),
		EndDate:     run.EndDate.Format("2006-01-02"),
		RunDate:     run.RunDate.Format("2006-01-02"),
		PayType:     run.PayType,
		Status:      string(run.Status),
		Notes:       run.Notes,
		FinalizedAt: finalizedAtStr,
	}

	if withLines {
		resp.Lines = make([]domain.WageRunLineResponse, 0, len(run.Lines))
		for _, line := range run.Lines {
			resp.Lines = append(resp.Lines, domain.WageRunLineResponse{
				ID:              line.ID,
				EmployeeID:      line.EmployeeID,
				EmployeeName:    line.EmployeeName,
				BranchName:      line.BranchName,
				HourlyRate:      line.HourlyRate,
				NormalHours:     line.NormalHours,
				Overtime15Hours: line.Overtime15Hours,
				Overtime20Hours: line.Overtime20Hours,
				LunchHours:      line.LunchHours,
				ProjectedHours:  line.ProjectedHours,
				VarianceHours:   line.VarianceHours,
				VarianceNotes:   line.VarianceNotes,
				LoanDeduction:   line.LoanDeduction,
				TotalWage:       line.TotalWage,
			})
		}
	}

	return resp
}
