package worktime

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

var ErrInvalidFormat = errors.New("time must be in HH:MM format")

// Leading zeros are mandatory, no seconds, no surrounding whitespace.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay is a wall-clock time as minutes since midnight, in [0, 1439].
type TimeOfDay struct {
	minutes int
}

// Parse converts a strict "HH:MM" string into a TimeOfDay.
// Inputs like "9:00", "24:00" or "12:00:00" are rejected, not coerced.
func Parse(s string) (TimeOfDay, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minute := int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	return TimeOfDay{minutes: hour*MinutesPerHour + minute}, nil
}

// MustParse is like Parse but panics on invalid input. Use for literals only.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/MinutesPerHour, t.minutes%MinutesPerHour)
}
