package fixtures

import "github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"

// ==========================================
// DEFAULT WORK SCHEDULE TEMPLATES
// ==========================================

// StandardOfficeHours is a 09:00-18:00 day schedule with a lunch break.
func StandardOfficeHours() schedule.CreateWorkScheduleRequest {
	return schedule.CreateWorkScheduleRequest{
		Name: "Standard Office Hours",
		ValidateScheduleRequest: schedule.ValidateScheduleRequest{
			WorkStartTime:    "09:00",
			WorkEndTime:      "18:00",
			ScheduleCategory: string(schedule.CategoryFixed),
			BreakPeriods: []schedule.BreakPeriodRequest{
				{Name: "Lunch", StartTime: "12:00", EndTime: "13:00"},
			},
		},
	}
}

// FlexibleOfficeHours keeps the office day but lets the afternoon break move.
func FlexibleOfficeHours() schedule.CreateWorkScheduleRequest {
	return schedule.CreateWorkScheduleRequest{
		Name: "Flexible Office Hours",
		ValidateScheduleRequest: schedule.ValidateScheduleRequest{
			WorkStartTime:    "08:00",
			WorkEndTime:      "17:00",
			ScheduleCategory: string(schedule.CategoryFlexible),
			BreakPeriods: []schedule.BreakPeriodRequest{
				{Name: "Lunch", StartTime: "12:00", EndTime: "13:00"},
				{Name: "Afternoon Break", StartTime: "15:00", EndTime: "15:15", IsFlexible: true},
			},
		},
	}
}

// AfternoonShift runs 14:00-22:00 with a dinner break.
func AfternoonShift() schedule.CreateWorkScheduleRequest {
	return schedule.CreateWorkScheduleRequest{
		Name: "Afternoon Shift",
		ValidateScheduleRequest: schedule.ValidateScheduleRequest{
			WorkStartTime:    "14:00",
			WorkEndTime:      "22:00",
			ScheduleCategory: string(schedule.CategoryShift),
			BreakPeriods: []schedule.BreakPeriodRequest{
				{Name: "Dinner", StartTime: "18:00", EndTime: "19:00"},
			},
		},
	}
}

// NightShift runs 22:00-06:00 next day; both breaks fall after midnight.
func NightShift() schedule.CreateWorkScheduleRequest {
	return schedule.CreateWorkScheduleRequest{
		Name: "Night Shift",
		ValidateScheduleRequest: schedule.ValidateScheduleRequest{
			WorkStartTime:    "22:00",
			WorkEndTime:      "06:00",
			ScheduleCategory: string(schedule.CategoryShift),
			BreakPeriods: []schedule.BreakPeriodRequest{
				{Name: "Meal", StartTime: "01:00", EndTime: "02:00"},
				{Name: "Rest", StartTime: "04:00", EndTime: "04:15", IsFlexible: true},
			},
		},
	}
}

// DefaultScheduleTemplates returns every template offered to new companies.
func DefaultScheduleTemplates() []schedule.CreateWorkScheduleRequest {
	return []schedule.CreateWorkScheduleRequest{
		StandardOfficeHours(),
		FlexibleOfficeHours(),
		AfternoonShift(),
		NightShift(),
	}
}
