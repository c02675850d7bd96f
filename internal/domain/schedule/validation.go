package schedule

import (
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/validator"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/worktime"
)

// Validate checks a candidate schedule and reports every problem it finds.
// User-input problems come back as data in the result; the error return is
// only used when the caller breaks the contract (a negative break bound).
//
// Stages run in order: time formats, work interval shape, overnight
// derivation, break shape and containment, break overlap, break total. A value that
// fails to parse is left out of the stages that need it. If either work time
// fails to parse there is no frame to compare breaks against, so the break
// stages are skipped.
func Validate(in ScheduleInput) (ValidationResult, error) {
	if in.MaxBreakMinutes < 0 {
		return ValidationResult{}, ErrNegativeBreakBound
	}

	errs := validator.ValidationErrors{}

	if !in.Category.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:      FieldScheduleCategory,
			MessageKey: KeyInvalidScheduleCategory,
		})
	}

	// Format stage
	workStart, startErr := worktime.Parse(in.WorkStartTime)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{Field: FieldWorkStartTime, MessageKey: KeyInvalidFormat})
	}
	workEnd, endErr := worktime.Parse(in.WorkEndTime)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{Field: FieldWorkEndTime, MessageKey: KeyInvalidFormat})
	}

	breaks := make([]worktime.BreakPeriod, 0, len(in.BreakPeriods))
	positions := make([]int, 0, len(in.BreakPeriods)) // index in the input for each parsed break
	for i, bp := range in.BreakPeriods {
		start, sErr := worktime.Parse(bp.StartTime)
		if sErr != nil {
			errs = append(errs, validator.ValidationError{
				Field:      FieldBreakStartTime,
				Index:      validator.IntPtr(i),
				MessageKey: KeyInvalidFormat,
			})
		}
		end, eErr := worktime.Parse(bp.EndTime)
		if eErr != nil {
			errs = append(errs, validator.ValidationError{
				Field:      FieldBreakEndTime,
				Index:      validator.IntPtr(i),
				MessageKey: KeyInvalidFormat,
			})
		}
		if sErr != nil || eErr != nil {
			continue
		}

		breaks = append(breaks, worktime.BreakPeriod{
			Name:       bp.Name,
			Interval:   worktime.Interval{Start: start, End: end},
			IsFlexible: bp.IsFlexible,
		})
		positions = append(positions, i)
	}

	if startErr != nil || endErr != nil {
		return ValidationResult{Valid: false, Errors: errs}, nil
	}

	// Work interval shape
	work := worktime.Interval{
		Start:           workStart,
		End:             workEnd,
		AllowWraparound: in.Category.AllowsOvernight(),
	}
	if !work.Valid() {
		errs = append(errs, validator.ValidationError{Field: FieldWorkEndTime, MessageKey: KeyInvalidRange})
	}

	// Breaks are judged in the frame the clock times imply, whatever the category says.
	isOvernight := work.IsOvernight()
	for k := range breaks {
		breaks[k].Interval.AllowWraparound = isOvernight
	}

	// Break shape and containment
	for k, bp := range breaks {
		if !bp.Interval.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:      FieldBreakPeriods,
				Index:      validator.IntPtr(positions[k]),
				MessageKey: KeyInvalidRange,
			})
		}
		if !work.Contains(bp.Interval, isOvernight) {
			errs = append(errs, validator.ValidationError{
				Field:      FieldBreakPeriods,
				Index:      validator.IntPtr(positions[k]),
				MessageKey: KeyBreakOutsideWorkHours,
			})
		}
	}

	// Mutual exclusion. Only the first overlapping pair is reported.
	if _, _, overlap := worktime.FirstOverlap(breaks, isOvernight); overlap {
		errs = append(errs, validator.ValidationError{Field: FieldBreakPeriods, MessageKey: KeyBreakOverlap})
	}

	candidate := Schedule{WorkInterval: work, BreakPeriods: breaks}
	totalBreak := candidate.TotalBreakMinutes()
	if totalBreak < 0 || totalBreak > in.MaxBreakMinutes {
		errs = append(errs, validator.ValidationError{Field: FieldTotalBreakMinutes, MessageKey: KeyBreakTotalOutOfBounds})
	}

	return ValidationResult{
		Valid:   len(errs) == 0,
		Errors:  errs,
		Derived: derive(work, isOvernight, totalBreak),
	}, nil
}
