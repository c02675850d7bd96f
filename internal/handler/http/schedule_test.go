package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
	"github.com/tamabee-group/tama-hr-sub002/internal/fixtures"
	scheduleService "github.com/tamabee-group/tama-hr-sub002/internal/service/schedule"
)

// handlerTestRepo is a minimal in-memory store; the service tests cover
// filtering and duplicates in depth.
type handlerTestRepo struct {
	schedules map[string]schedule.WorkSchedule
	order     []string
}

func (r *handlerTestRepo) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	for _, id := range r.order {
		if r.schedules[id].Name == ws.Name {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNameExists
		}
	}
	ws.ID = uuid.Must(uuid.NewV7()).String()
	ws.CreatedAt = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	ws.UpdatedAt = ws.CreatedAt
	for i := range ws.BreakPeriods {
		ws.BreakPeriods[i].Position = i
	}
	r.schedules[ws.ID] = ws
	r.order = append(r.order, ws.ID)
	return ws, nil
}

func (r *handlerTestRepo) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	ws, ok := r.schedules[id]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
	}
	return ws, nil
}

func (r *handlerTestRepo) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.WorkSchedule, int64, error) {
	var result []schedule.WorkSchedule
	for _, id := range r.order {
		result = append(result, r.schedules[id])
	}
	return result, int64(len(result)), nil
}

func (r *handlerTestRepo) SoftDelete(ctx context.Context, id string) error {
	if _, ok := r.schedules[id]; !ok {
		return schedule.ErrWorkScheduleNotFound
	}
	delete(r.schedules, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := &handlerTestRepo{schedules: map[string]schedule.WorkSchedule{}}
	svc := scheduleService.NewScheduleService(repo, schedule.Limits{MaxBreakMinutes: 480, MaxBreakPeriods: 5})
	return NewRouter(RouterOptions{AllowedOrigins: []string{"http://localhost:3000"}}, NewScheduleHandler(svc))
}

type testResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
		Fields  []struct {
			Field      string `json:"field"`
			Index      *int   `json:"index"`
			MessageKey string `json:"message_key"`
		} `json:"fields"`
	} `json:"error"`
	Meta *struct {
		TotalItems int64  `json:"total_items"`
		TotalPages int    `json:"total_pages"`
		Showing    string `json:"showing"`
	} `json:"meta"`
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp testResponse
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// ===== HANDLER TESTS =====

func TestScheduleHandler_Validate_ValidSchedule(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/work-schedules/validate", map[string]interface{}{
		"work_start_time":   "22:00",
		"work_end_time":     "06:00",
		"schedule_category": "SHIFT",
		"break_periods": []map[string]interface{}{
			{"name": "Meal", "start_time": "02:00", "end_time": "02:30"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	var result struct {
		Valid   bool              `json:"valid"`
		Errors  []json.RawMessage `json:"errors"`
		Derived struct {
			IsOvernight       bool   `json:"is_overnight"`
			TotalBreakMinutes int    `json:"total_break_minutes"`
			NetWorkMinutes    int    `json:"net_work_minutes"`
			NetWorkHours      string `json:"net_work_hours"`
		} `json:"derived"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.True(t, result.Valid)
	assert.NotNil(t, result.Errors, "errors is an empty list, not null")
	assert.Empty(t, result.Errors)
	assert.True(t, result.Derived.IsOvernight)
	assert.Equal(t, 30, result.Derived.TotalBreakMinutes)
	assert.Equal(t, 450, result.Derived.NetWorkMinutes)
	assert.Equal(t, "7.5", result.Derived.NetWorkHours)
}

func TestScheduleHandler_Validate_InvalidScheduleIsStillOK(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/work-schedules/validate", map[string]interface{}{
		"work_start_time":   "09:00",
		"work_end_time":     "18:00",
		"schedule_category": "FIXED",
		"break_periods": []map[string]interface{}{
			{"start_time": "19:00", "end_time": "20:00"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Valid  bool `json:"valid"`
		Errors []struct {
			Field      string `json:"field"`
			Index      *int   `json:"index"`
			MessageKey string `json:"message_key"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "break_periods", result.Errors[0].Field)
	require.NotNil(t, result.Errors[0].Index)
	assert.Equal(t, 0, *result.Errors[0].Index)
	assert.Equal(t, schedule.KeyBreakOutsideWorkHours, result.Errors[0].MessageKey)
}

func TestScheduleHandler_Validate_BadRequests(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/work-schedules/validate", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/work-schedules/validate", map[string]interface{}{
		"work_start_time":   "09:00",
		"work_end_time":     "18:00",
		"schedule_category": "FIXED",
		"max_break_minutes": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandler_Templates(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/work-schedules/templates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var templates []struct {
		Name   string `json:"name"`
		Result struct {
			Valid bool `json:"valid"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &templates))
	assert.Len(t, templates, len(fixtures.DefaultScheduleTemplates()))
	for _, tmpl := range templates {
		assert.True(t, tmpl.Result.Valid, tmpl.Name)
	}
}

func TestScheduleHandler_CreateGetListDelete(t *testing.T) {
	router := newTestRouter(t)

	// Create
	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/work-schedules", fixtures.NightShift())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		IsOvernight  bool   `json:"is_overnight"`
		NetWorkHours string `json:"net_work_hours"`
		CreatedAt    string `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "Night Shift", created.Name)
	assert.True(t, created.IsOvernight)
	assert.Equal(t, "6.75", created.NetWorkHours)
	assert.Equal(t, "2026-01-05T09:00:00Z", created.CreatedAt)

	// Duplicate
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/work-schedules", fixtures.NightShift())
	assert.Equal(t, http.StatusConflict, w.Code)

	// Get
	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/work-schedules/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), created.ID)

	// List
	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/work-schedules?page=1&limit=10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.TotalItems)
	assert.Equal(t, "1-1 of 1 results", resp.Meta.Showing)

	// Delete
	w, _ = doRequest(t, router, http.MethodDelete, "/api/v1/work-schedules/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = doRequest(t, router, http.MethodGet, "/api/v1/work-schedules/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestScheduleHandler_Create_ValidationFailed(t *testing.T) {
	router := newTestRouter(t)

	req := fixtures.StandardOfficeHours()
	req.Name = ""
	req.WorkEndTime = "24:00"

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/work-schedules", req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "required", resp.Error.Details["name"])
	assert.Equal(t, schedule.KeyInvalidFormat, resp.Error.Details["work_end_time"])
	assert.Len(t, resp.Error.Fields, 2)
}

func TestScheduleHandler_List_InvalidFilter(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/work-schedules?sort_by=salary", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_option", resp.Error.Details["sort_by"])
}

func TestRouter_Heartbeat(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
