package schedule

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/validator"
)

type BreakPeriodRequest struct {
	Name       string `json:"name" validate:"max=100"`
	StartTime  string `json:"start_time"` // HH:MM format
	EndTime    string `json:"end_time"`   // HH:MM format
	IsFlexible bool   `json:"is_flexible"`
}

// ValidateScheduleRequest is a candidate schedule as submitted by a form.
// MaxBreakMinutes falls back to the configured bound when omitted.
type ValidateScheduleRequest struct {
	WorkStartTime    string               `json:"work_start_time"` // HH:MM format
	WorkEndTime      string               `json:"work_end_time"`   // HH:MM format
	ScheduleCategory string               `json:"schedule_category"`
	BreakPeriods     []BreakPeriodRequest `json:"break_periods" validate:"dive"`
	MaxBreakMinutes  *int                 `json:"max_break_minutes,omitempty"`
}

// Validate checks the request envelope only. Time values are left to the
// schedule validator so that every problem is reported in one pass.
func (r *ValidateScheduleRequest) Validate(limits Limits) error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if limits.MaxBreakPeriods > 0 && len(r.BreakPeriods) > limits.MaxBreakPeriods {
		errs = append(errs, validator.ValidationError{
			Field:      FieldBreakPeriods,
			MessageKey: KeyTooManyBreakPeriods,
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Input converts the request for the schedule validator.
func (r ValidateScheduleRequest) Input(limits Limits) ScheduleInput {
	maxBreak := limits.MaxBreakMinutes
	if r.MaxBreakMinutes != nil {
		maxBreak = *r.MaxBreakMinutes
	}

	periods := make([]BreakPeriodInput, 0, len(r.BreakPeriods))
	for _, bp := range r.BreakPeriods {
		periods = append(periods, BreakPeriodInput(bp))
	}

	return ScheduleInput{
		WorkStartTime:   r.WorkStartTime,
		WorkEndTime:     r.WorkEndTime,
		Category:        Category(r.ScheduleCategory),
		BreakPeriods:    periods,
		MaxBreakMinutes: maxBreak,
	}
}

type CreateWorkScheduleRequest struct {
	Name string `json:"name"`
	ValidateScheduleRequest
}

func (r *CreateWorkScheduleRequest) Validate(limits Limits) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:      FieldName,
			MessageKey: validator.KeyRequired,
		})
	} else if utf8.RuneCountInString(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:      FieldName,
			MessageKey: validator.KeyTooLong,
		})
	}

	if err := r.ValidateScheduleRequest.Validate(limits); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BreakPeriodInput mirrors BreakPeriodRequest without transport tags.
type BreakPeriodInput struct {
	Name       string
	StartTime  string
	EndTime    string
	IsFlexible bool
}

// ScheduleInput is the plain data handed to Validate.
type ScheduleInput struct {
	WorkStartTime   string
	WorkEndTime     string
	Category        Category
	BreakPeriods    []BreakPeriodInput
	MaxBreakMinutes int
}

// ValidationResult is returned for every candidate, valid or not.
type ValidationResult struct {
	Valid   bool                       `json:"valid"`
	Errors  validator.ValidationErrors `json:"errors"`
	Derived Derived                    `json:"derived"`
}

// Derived carries figures computed from whatever parsed. They are filled in
// even when the schedule is invalid, as long as the work times parse.
type Derived struct {
	IsOvernight       bool            `json:"is_overnight"`
	TotalBreakMinutes int             `json:"total_break_minutes"`
	WorkMinutes       int             `json:"work_minutes"`
	NetWorkMinutes    int             `json:"net_work_minutes"`
	NetWorkHours      decimal.Decimal `json:"net_work_hours"`
}

type BreakPeriodResponse struct {
	ID         string `json:"id"`
	Position   int    `json:"position"`
	Name       string `json:"name"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	IsFlexible bool   `json:"is_flexible"`
}

type WorkScheduleResponse struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	ScheduleCategory  string                `json:"schedule_category"`
	WorkStartTime     string                `json:"work_start_time"`
	WorkEndTime       string                `json:"work_end_time"`
	IsOvernight       bool                  `json:"is_overnight"`
	TotalBreakMinutes int                   `json:"total_break_minutes"`
	NetWorkMinutes    int                   `json:"net_work_minutes"`
	NetWorkHours      decimal.Decimal       `json:"net_work_hours"`
	BreakPeriods      []BreakPeriodResponse `json:"break_periods"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
}

type ListWorkScheduleResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	Showing       string                 `json:"showing"` // "21-40 of 150 results"
	WorkSchedules []WorkScheduleResponse `json:"work_schedules"`
}

type ScheduleTemplateResponse struct {
	Name     string                  `json:"name"`
	Schedule ValidateScheduleRequest `json:"schedule"`
	Result   ValidationResult        `json:"result"`
}

type WorkScheduleFilter struct {
	// Search & Filter
	Name     *string `json:"name,omitempty"`
	Category *string `json:"schedule_category,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // name, schedule_category, created_at
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *WorkScheduleFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", MessageKey: validator.KeyInvalid})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", MessageKey: validator.KeyInvalid})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}

	if f.Category != nil && !validator.IsInSlice(*f.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{Field: FieldScheduleCategory, MessageKey: validator.KeyInvalidOption})
	}

	if f.SortBy != "" {
		validSortFields := []string{"name", "schedule_category", "created_at"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{Field: "sort_by", MessageKey: validator.KeyInvalidOption})
		}
	} else {
		f.SortBy = "name"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{Field: "sort_order", MessageKey: validator.KeyInvalidOption})
		}
	} else {
		f.SortOrder = "asc"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
