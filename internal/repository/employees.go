package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sysu-ecnc-dev/office-roster/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	fixedDays, err := json.Marshal(employee.FixedDays)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employees (name, sex, role, required_days, fixed_days, is_nsp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{employee.Name, employee.Sex, employee.Role, employee.RequiredDays, fixedDays, employee.IsNSP}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

// CreateEmployees 在一个事务中批量插入员工，任何一条失败都会整体回滚
func (r *Repository) CreateEmployees(employees []*domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO employees (name, sex, role, required_days, fixed_days, is_nsp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	for _, employee := range employees {
		fixedDays, err := json.Marshal(employee.FixedDays)
		if err != nil {
			return err
		}

		args := []any{employee.Name, employee.Sex, employee.Role, employee.RequiredDays, fixedDays, employee.IsNSP}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.CreatedAt, &employee.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT name, sex, role, required_days, fixed_days, is_nsp, created_at, version
		FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	var fixedDays []byte
	dst := []any{&employee.Name, &employee.Sex, &employee.Role, &employee.RequiredDays, &fixedDays, &employee.IsNSP, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(fixedDays, &employee.FixedDays); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	query := `
		SELECT id, name, sex, role, required_days, fixed_days, is_nsp, created_at, version
		FROM employees ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		var fixedDays []byte

		dst := []any{&employee.ID, &employee.Name, &employee.Sex, &employee.Role, &employee.RequiredDays, &fixedDays, &employee.IsNSP, &employee.CreatedAt, &employee.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(fixedDays, &employee.FixedDays); err != nil {
			return nil, err
		}

		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	fixedDays, err := json.Marshal(employee.FixedDays)
	if err != nil {
		return err
	}

	query := `
		UPDATE employees
		SET
			name = $1,
			sex = $2,
			role = $3,
			required_days = $4,
			fixed_days = $5,
			is_nsp = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version
	`

	args := []any{employee.Name, employee.Sex, employee.Role, employee.RequiredDays, fixedDays, employee.IsNSP, employee.ID, employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAllEmployees() error {
	query := `
		DELETE FROM employees
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query)
	if err != nil {
		return err
	}

	return nil
}
