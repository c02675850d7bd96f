package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
	"github.com/tamabee-group/tama-hr-sub002/internal/fixtures"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/validator"
)

type scheduleServiceImpl struct {
	workScheduleRepo schedule.WorkScheduleRepository
	limits           schedule.Limits
}

func NewScheduleService(workScheduleRepo schedule.WorkScheduleRepository, limits schedule.Limits) schedule.ScheduleService {
	return &scheduleServiceImpl{
		workScheduleRepo: workScheduleRepo,
		limits:           limits,
	}
}

// ValidateSchedule implements schedule.ScheduleService.
// Envelope problems and schedule problems come back together in the result.
func (s *scheduleServiceImpl) ValidateSchedule(ctx context.Context, req schedule.ValidateScheduleRequest) (schedule.ValidationResult, error) {
	envelopeErrs, err := envelopeErrors(req.Validate(s.limits))
	if err != nil {
		return schedule.ValidationResult{}, err
	}

	return s.validate(req, envelopeErrs)
}

// ListTemplates implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListTemplates(ctx context.Context) ([]schedule.ScheduleTemplateResponse, error) {
	templates := fixtures.DefaultScheduleTemplates()

	responses := make([]schedule.ScheduleTemplateResponse, 0, len(templates))
	for _, tmpl := range templates {
		result, err := s.ValidateSchedule(ctx, tmpl.ValidateScheduleRequest)
		if err != nil {
			return nil, fmt.Errorf("failed to validate template %q: %w", tmpl.Name, err)
		}
		if !result.Valid {
			slog.Warn("Default schedule template is invalid under current limits",
				"template", tmpl.Name, "errors", result.Errors.Error())
		}
		responses = append(responses, schedule.ScheduleTemplateResponse{
			Name:     tmpl.Name,
			Schedule: tmpl.ValidateScheduleRequest,
			Result:   result,
		})
	}

	return responses, nil
}

// CreateWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	envelopeErrs, err := envelopeErrors(req.Validate(s.limits))
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	result, err := s.validate(req.ValidateScheduleRequest, envelopeErrs)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	if !result.Valid {
		return schedule.WorkScheduleResponse{}, result.Errors
	}

	ws := schedule.WorkSchedule{
		Name:              req.Name,
		Category:          schedule.Category(req.ScheduleCategory),
		WorkStartTime:     req.WorkStartTime,
		WorkEndTime:       req.WorkEndTime,
		IsOvernight:       result.Derived.IsOvernight,
		TotalBreakMinutes: result.Derived.TotalBreakMinutes,
		NetWorkMinutes:    result.Derived.NetWorkMinutes,
	}
	for _, bp := range req.BreakPeriods {
		ws.BreakPeriods = append(ws.BreakPeriods, schedule.WorkScheduleBreak{
			Name:       bp.Name,
			StartTime:  bp.StartTime,
			EndTime:    bp.EndTime,
			IsFlexible: bp.IsFlexible,
		})
	}

	created, err := s.workScheduleRepo.Create(ctx, ws)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return schedule.WorkScheduleResponse{}, schedule.ErrWorkScheduleNameExists
		}
		if errors.Is(err, schedule.ErrWorkScheduleNameExists) {
			return schedule.WorkScheduleResponse{}, err
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	slog.Info("Work schedule created",
		"id", created.ID,
		"category", created.Category,
		"is_overnight", created.IsOvernight,
		"break_periods", len(created.BreakPeriods),
	)

	return mapWorkScheduleToResponse(created), nil
}

// GetWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	if !validator.IsValidUUID(id) {
		return schedule.WorkScheduleResponse{}, schedule.ErrWorkScheduleNotFound
	}

	ws, err := s.workScheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return schedule.WorkScheduleResponse{}, err
		}
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return mapWorkScheduleToResponse(ws), nil
}

// ListWorkSchedules implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListWorkSchedules(ctx context.Context, filter schedule.WorkScheduleFilter) (schedule.ListWorkScheduleResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListWorkScheduleResponse{}, err
	}

	workSchedules, totalCount, err := s.workScheduleRepo.List(ctx, filter)
	if err != nil {
		return schedule.ListWorkScheduleResponse{}, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(workSchedules))
	for _, ws := range workSchedules {
		responses = append(responses, mapWorkScheduleToResponse(ws))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))

	return schedule.ListWorkScheduleResponse{
		TotalCount:    totalCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    totalPages,
		Showing:       calculateShowingText(filter.Page, filter.Limit, totalCount),
		WorkSchedules: responses,
	}, nil
}

// DeleteWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteWorkSchedule(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return schedule.ErrWorkScheduleNotFound
	}

	if err := s.workScheduleRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}

	slog.Info("Work schedule deleted", "id", id)
	return nil
}

func (s *scheduleServiceImpl) validate(req schedule.ValidateScheduleRequest, envelopeErrs validator.ValidationErrors) (schedule.ValidationResult, error) {
	// Too many periods: skip the pairwise checks entirely.
	if envelopeErrs.Has(schedule.KeyTooManyBreakPeriods) {
		return schedule.ValidationResult{Valid: false, Errors: envelopeErrs}, nil
	}

	result, err := schedule.Validate(req.Input(s.limits))
	if err != nil {
		return schedule.ValidationResult{}, fmt.Errorf("%w: %w", schedule.ErrInvalidRequestData, err)
	}

	if len(envelopeErrs) > 0 {
		result.Errors = append(envelopeErrs, result.Errors...)
		result.Valid = false
	}

	return result, nil
}

// envelopeErrors separates field errors from unexpected failures.
func envelopeErrors(err error) (validator.ValidationErrors, error) {
	if err == nil {
		return nil, nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return errs, nil
	}
	return nil, err
}

func mapWorkScheduleToResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	breaks := make([]schedule.BreakPeriodResponse, 0, len(ws.BreakPeriods))
	for _, bp := range ws.BreakPeriods {
		breaks = append(breaks, schedule.BreakPeriodResponse{
			ID:         bp.ID,
			Position:   bp.Position,
			Name:       bp.Name,
			StartTime:  bp.StartTime,
			EndTime:    bp.EndTime,
			IsFlexible: bp.IsFlexible,
		})
	}

	return schedule.WorkScheduleResponse{
		ID:                ws.ID,
		Name:              ws.Name,
		ScheduleCategory:  string(ws.Category),
		WorkStartTime:     ws.WorkStartTime,
		WorkEndTime:       ws.WorkEndTime,
		IsOvernight:       ws.IsOvernight,
		TotalBreakMinutes: ws.TotalBreakMinutes,
		NetWorkMinutes:    ws.NetWorkMinutes,
		NetWorkHours:      schedule.MinutesToHours(ws.NetWorkMinutes),
		BreakPeriods:      breaks,
		CreatedAt:         ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         ws.UpdatedAt.Format(time.RFC3339),
	}
}

// calculateShowingText generates the "showing X-Y of Z results" text
func calculateShowingText(page, limit int, total int64) string {
	if total == 0 {
		return "0-0 of 0 results"
	}

	start := (page-1)*limit + 1
	end := start + limit - 1

	if end > int(total) {
		end = int(total)
	}

	return fmt.Sprintf("%d-%d of %d results", start, end, total)
}
