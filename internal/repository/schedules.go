package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

// SaveMonthlySchedule 保存月度坐班表，同一个 (year, month) 已有记录时直接覆盖
func (r *Repository) SaveMonthlySchedule(record *domain.ScheduleRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	roster, err := json.Marshal(record.Roster)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO monthly_schedules (year, month, roster)
		VALUES ($1, $2, $3)
		ON CONFLICT (year, month) DO UPDATE
		SET
			roster = EXCLUDED.roster,
			version = monthly_schedules.version + 1
		RETURNING id, created_at, version
	`

	args := []any{record.Year, record.Month, roster}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.CreatedAt, &record.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetMonthlySchedule(year int32, month int32) (*domain.ScheduleRecord, error) {
	query := `
		SELECT id, roster, created_at, version
		FROM monthly_schedules WHERE year = $1 AND month = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	record := &domain.ScheduleRecord{
		Year:  year,
		Month: month,
	}

	var roster []byte
	dst := []any{&record.ID, &roster, &record.CreatedAt, &record.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, year, month).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(roster, &record.Roster); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) DeleteAllSchedules() error {
	query := `
		DELETE FROM monthly_schedules
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query)
	if err != nil {
		return err
	}

	return nil
}

// CollectPastWeekdaySets 收集 (year, month) 之前 months 个月里每位员工的坐班日集合
// 返回结果按月份从最早到最近排列，某个月没有保存坐班表或者员工当月没有坐班时直接跳过
func (r *Repository) CollectPastWeekdaySets(year int32, month int32, employees []*domain.Employee, months int) (domain.PastSchedules, error) {
	past := make(domain.PastSchedules)

	base := time.Date(int(year), time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for offset := months; offset >= 1; offset-- {
		previous := base.AddDate(0, -offset, 0)

		record, err := r.GetMonthlySchedule(int32(previous.Year()), int32(previous.Month()))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return nil, err
		}

		for _, employee := range employees {
			days := record.Roster.EmployeeDays(employee.ID)
			if len(days) > 0 {
				past[employee.ID] = append(past[employee.ID], days)
			}
		}
	}

	return past, nil
}
