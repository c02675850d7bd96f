package schedule

import (
	"github.com/shopspring/decimal"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/worktime"
)

var minutesPerHour = decimal.NewFromInt(worktime.MinutesPerHour)

func derive(work worktime.Interval, isOvernight bool, totalBreak int) Derived {
	workMinutes := work.Duration(isOvernight)

	net := workMinutes - totalBreak
	if net < 0 {
		net = 0
	}

	return Derived{
		IsOvernight:       isOvernight,
		TotalBreakMinutes: totalBreak,
		WorkMinutes:       workMinutes,
		NetWorkMinutes:    net,
		NetWorkHours:      MinutesToHours(net),
	}
}

// MinutesToHours converts a minute count to hours rounded to two places.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2)
}
