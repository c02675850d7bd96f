package schedule

import "context"

type ScheduleService interface {
	// Validation
	ValidateSchedule(ctx context.Context, req ValidateScheduleRequest) (ValidationResult, error)
	ListTemplates(ctx context.Context) ([]ScheduleTemplateResponse, error)

	// Work Schedule
	CreateWorkSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	GetWorkSchedule(ctx context.Context, id string) (WorkScheduleResponse, error)
	ListWorkSchedules(ctx context.Context, filter WorkScheduleFilter) (ListWorkScheduleResponse, error)
	DeleteWorkSchedule(ctx context.Context, id string) error
}
