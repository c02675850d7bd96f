package schedule

import (
	"time"

	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/worktime"
)

// Category controls whether a schedule may cross midnight.
type Category string

const (
	CategoryFixed    Category = "FIXED"
	CategoryFlexible Category = "FLEXIBLE"
	CategoryShift    Category = "SHIFT" // only shifts may run overnight
)

var CategoryValues = []string{
	string(CategoryFixed),
	string(CategoryFlexible),
	string(CategoryShift),
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFixed, CategoryFlexible, CategoryShift:
		return true
	}
	return false
}

func (c Category) AllowsOvernight() bool {
	return c == CategoryShift
}

// Schedule is a parsed candidate: the work interval plus its breaks in the
// order they were submitted.
type Schedule struct {
	WorkInterval worktime.Interval
	BreakPeriods []worktime.BreakPeriod
}

// IsOvernight is derived from the clock times, not from the category.
func (s Schedule) IsOvernight() bool {
	return s.WorkInterval.IsOvernight()
}

func (s Schedule) TotalBreakMinutes() int {
	return worktime.TotalMinutes(s.BreakPeriods, s.IsOvernight())
}

// Limits are the caller-supplied bounds applied by the service.
type Limits struct {
	MaxBreakMinutes int
	MaxBreakPeriods int
}

// WorkSchedule is an accepted schedule as stored.
type WorkSchedule struct {
	ID                string
	Name              string
	Category          Category
	WorkStartTime     string
	WorkEndTime       string
	IsOvernight       bool
	TotalBreakMinutes int
	NetWorkMinutes    int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time

	BreakPeriods []WorkScheduleBreak
}

type WorkScheduleBreak struct {
	ID             string
	WorkScheduleID string
	Position       int
	Name           string
	StartTime      string
	EndTime        string
	IsFlexible     bool
	CreatedAt      time.Time
}
