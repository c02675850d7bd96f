package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/database"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to generate work schedule id: %w", err)
	}
	ws.ID = id.String()

	err = WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			INSERT INTO work_schedules (
				id, name, schedule_category, work_start_time, work_end_time,
				is_overnight, total_break_minutes, net_work_minutes
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at
		`
		err := q.QueryRow(ctx, query,
			ws.ID, ws.Name, ws.Category, ws.WorkStartTime, ws.WorkEndTime,
			ws.IsOvernight, ws.TotalBreakMinutes, ws.NetWorkMinutes,
		).Scan(&ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create work schedule: %w", err)
		}

		for i := range ws.BreakPeriods {
			bp := &ws.BreakPeriods[i]

			breakID, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to generate break period id: %w", err)
			}
			bp.ID = breakID.String()
			bp.WorkScheduleID = ws.ID
			bp.Position = i

			err = q.QueryRow(ctx, `
				INSERT INTO work_schedule_breaks (
					id, work_schedule_id, position, name, start_time, end_time, is_flexible
				)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING created_at
			`, bp.ID, bp.WorkScheduleID, bp.Position, bp.Name, bp.StartTime, bp.EndTime, bp.IsFlexible,
			).Scan(&bp.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to create break period %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, schedule_category, work_start_time, work_end_time,
			   is_overnight, total_break_minutes, net_work_minutes, created_at, updated_at
		FROM work_schedules
		WHERE id = $1 AND deleted_at IS NULL
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.Name, &ws.Category, &ws.WorkStartTime, &ws.WorkEndTime,
		&ws.IsOvernight, &ws.TotalBreakMinutes, &ws.NetWorkMinutes, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
	}
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	breaks, err := r.getBreaks(ctx, []string{ws.ID})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.BreakPeriods = breaks[ws.ID]

	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.WorkSchedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		where += fmt.Sprintf(" AND schedule_category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM work_schedules WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work schedules: %w", err)
	}

	orderByField := "name"
	switch filter.SortBy {
	case "schedule_category":
		orderByField = "schedule_category"
	case "created_at":
		orderByField = "created_at"
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT id, name, schedule_category, work_start_time, work_end_time,
			   is_overnight, total_break_minutes, net_work_minutes, created_at, updated_at
		FROM work_schedules
		WHERE %s
		ORDER BY %s %s, id
		LIMIT $%d OFFSET $%d
	`, where, orderByField, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	var ids []string
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(
			&ws.ID, &ws.Name, &ws.Category, &ws.WorkStartTime, &ws.WorkEndTime,
			&ws.IsOvernight, &ws.TotalBreakMinutes, &ws.NetWorkMinutes, &ws.CreatedAt, &ws.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
		ids = append(ids, ws.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate work schedules: %w", err)
	}

	if len(ids) == 0 {
		return schedules, total, nil
	}

	breaks, err := r.getBreaks(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range schedules {
		schedules[i].BreakPeriods = breaks[schedules[i].ID]
	}

	return schedules, total, nil
}

// SoftDelete implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE work_schedules
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}
	return nil
}

// getBreaks loads break periods for the given schedules, keyed by schedule id
// and ordered by position.
func (r *workScheduleRepositoryImpl) getBreaks(ctx context.Context, scheduleIDs []string) (map[string][]schedule.WorkScheduleBreak, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, work_schedule_id, position, name, start_time, end_time, is_flexible, created_at
		FROM work_schedule_breaks
		WHERE work_schedule_id = ANY($1::uuid[])
		ORDER BY work_schedule_id, position
	`, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get break periods: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]schedule.WorkScheduleBreak, len(scheduleIDs))
	for rows.Next() {
		var bp schedule.WorkScheduleBreak
		if err := rows.Scan(
			&bp.ID, &bp.WorkScheduleID, &bp.Position, &bp.Name,
			&bp.StartTime, &bp.EndTime, &bp.IsFlexible, &bp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan break period: %w", err)
		}
		result[bp.WorkScheduleID] = append(result[bp.WorkScheduleID], bp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate break periods: %w", err)
	}

	return result, nil
}
