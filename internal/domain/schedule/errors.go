package schedule

import "errors"

// Message keys returned to clients for localization.
const (
	KeyInvalidFormat           = "invalid_format"
	KeyInvalidRange            = "invalid_range"
	KeyBreakOutsideWorkHours   = "break_outside_work_hours"
	KeyBreakOverlap            = "break_overlap"
	KeyBreakTotalOutOfBounds   = "break_total_out_of_bounds"
	KeyTooManyBreakPeriods     = "too_many_break_periods"
	KeyInvalidScheduleCategory = "invalid_schedule_category"
)

// Field tags used on validation errors.
const (
	FieldName              = "name"
	FieldWorkStartTime     = "work_start_time"
	FieldWorkEndTime       = "work_end_time"
	FieldScheduleCategory  = "schedule_category"
	FieldBreakPeriods      = "break_periods"
	FieldBreakStartTime    = "break_periods.start_time"
	FieldBreakEndTime      = "break_periods.end_time"
	FieldTotalBreakMinutes = "total_break_minutes"
)

var (
	// Contract violations
	ErrNegativeBreakBound = errors.New("max break minutes must not be negative")

	// Work Schedule Errors
	ErrWorkScheduleNotFound   = errors.New("work schedule not found")
	ErrWorkScheduleNameExists = errors.New("work schedule with this name already exists")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
