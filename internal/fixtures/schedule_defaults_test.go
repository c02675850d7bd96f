package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
)

func TestDefaultScheduleTemplates_AreValid(t *testing.T) {
	limits := schedule.Limits{MaxBreakMinutes: 480, MaxBreakPeriods: 5}

	for _, tmpl := range DefaultScheduleTemplates() {
		t.Run(tmpl.Name, func(t *testing.T) {
			require.NoError(t, tmpl.Validate(limits))

			result, err := schedule.Validate(tmpl.Input(limits))
			require.NoError(t, err)
			assert.True(t, result.Valid, "errors: %v", result.Errors)
		})
	}
}

func TestNightShift_Derived(t *testing.T) {
	result, err := schedule.Validate(NightShift().Input(schedule.Limits{MaxBreakMinutes: 480}))
	require.NoError(t, err)

	assert.True(t, result.Derived.IsOvernight)
	assert.Equal(t, 75, result.Derived.TotalBreakMinutes)
	assert.Equal(t, 405, result.Derived.NetWorkMinutes)
}
