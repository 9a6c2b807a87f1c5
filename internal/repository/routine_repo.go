package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"climacontrol/internal/models"

	"github.com/google/uuid"
)

type RoutineSQLite struct {
	conn *sql.DB
}

func NewRoutineSQLite(conn *sql.DB) *RoutineSQLite {
	return &RoutineSQLite{conn: conn}
}

const routineColumns = `id, name, mode, action, days, equipment_ids, environment_ids,
	temperature_rules, summary, enabled, created_at`

const insertRoutineSQL = `
	INSERT INTO routines (` + routineColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Create inserts a routine. A missing ID or CreatedAt is filled in.
func (r *RoutineSQLite) Create(ctx context.Context, rt models.Routine) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now().UTC()
	} else {
		rt.CreatedAt = rt.CreatedAt.UTC()
	}

	days, err := json.Marshal(rt.Days)
	if err != nil {
		return fmt.Errorf("marshal days: %w", err)
	}
	equipment, err := json.Marshal(rt.EquipmentIDs)
	if err != nil {
		return fmt.Errorf("marshal equipment ids: %w", err)
	}
	environments, err := json.Marshal(rt.EnvironmentIDs)
	if err != nil {
		return fmt.Errorf("marshal environment ids: %w", err)
	}
	var rules any
	if len(rt.TemperatureRules) > 0 {
		b, err := json.Marshal(rt.TemperatureRules)
		if err != nil {
			return fmt.Errorf("marshal temperature rules: %w", err)
		}
		rules = string(b)
	}

	_, err = r.conn.ExecContext(ctx, insertRoutineSQL,
		rt.ID, rt.Name, rt.Mode, rt.Action, string(days), string(equipment),
		string(environments), rules, rt.Summary, rt.Enabled, rt.CreatedAt,
	)
	return err
}

func (r *RoutineSQLite) List(ctx context.Context) ([]models.Routine, error) {
	return r.query(ctx, `SELECT `+routineColumns+` FROM routines ORDER BY created_at ASC`)
}

func (r *RoutineSQLite) ListEnabled(ctx context.Context) ([]models.Routine, error) {
	return r.query(ctx, `SELECT `+routineColumns+` FROM routines WHERE enabled=1 ORDER BY created_at ASC`)
}

func (r *RoutineSQLite) Get(ctx context.Context, id string) (models.Routine, error) {
	row := r.conn.QueryRowContext(ctx, `SELECT `+routineColumns+` FROM routines WHERE id=?`, id)
	rt, err := scanRoutine(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Routine{}, fmt.Errorf("routine %q: %w", id, ErrNotFound)
	}
	return rt, err
}

func (r *RoutineSQLite) SetEnabled(ctx context.Context, id string, enabled bool) error {
	res, err := r.conn.ExecContext(ctx, `UPDATE routines SET enabled=? WHERE id=?`, enabled, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("routine %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *RoutineSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM routines WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("routine %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *RoutineSQLite) query(ctx context.Context, q string, args ...any) ([]models.Routine, error) {
	rows, err := r.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Routine, 0, 8)
	for rows.Next() {
		rt, err := scanRoutine(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRoutine(scan func(...any) error) (models.Routine, error) {
	var rt models.Routine
	var days, equipment, environments string
	var rules sql.NullString
	err := scan(
		&rt.ID, &rt.Name, &rt.Mode, &rt.Action, &days, &equipment,
		&environments, &rules, &rt.Summary, &rt.Enabled, &rt.CreatedAt,
	)
	if err != nil {
		return models.Routine{}, err
	}
	if err := json.Unmarshal([]byte(days), &rt.Days); err != nil {
		return models.Routine{}, fmt.Errorf("unmarshal days: %w", err)
	}
	if err := json.Unmarshal([]byte(equipment), &rt.EquipmentIDs); err != nil {
		return models.Routine{}, fmt.Errorf("unmarshal equipment ids: %w", err)
	}
	if err := json.Unmarshal([]byte(environments), &rt.EnvironmentIDs); err != nil {
		return models.Routine{}, fmt.Errorf("unmarshal environment ids: %w", err)
	}
	if rules.Valid && rules.String != "" {
		if err := json.Unmarshal([]byte(rules.String), &rt.TemperatureRules); err != nil {
			return models.Routine{}, fmt.Errorf("unmarshal temperature rules: %w", err)
		}
	}
	rt.CreatedAt = rt.CreatedAt.UTC()
	return rt, nil
}
