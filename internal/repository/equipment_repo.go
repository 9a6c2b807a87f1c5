package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"climacontrol/internal/models"
)

type EquipmentSQLite struct {
	conn *sql.DB
}

func NewEquipmentSQLite(conn *sql.DB) *EquipmentSQLite {
	return &EquipmentSQLite{conn: conn}
}

const equipmentColumns = `id, name, location, environment_id, is_on, current_temp_c,
	target_temp_c, mode, energy_consumption_w, efficiency_pct, model, capacity_btu, integration`

const insertEquipmentSQL = `
	INSERT INTO equipments (` + equipmentColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateEquipmentSQL = `
	UPDATE equipments SET
		name=?, location=?, environment_id=?, is_on=?, current_temp_c=?,
		target_temp_c=?, mode=?, energy_consumption_w=?, efficiency_pct=?,
		model=?, capacity_btu=?, integration=?
	WHERE id=?
`

// List returns every unit, optionally narrowed by a case-insensitive
// name/location search, ordered by name.
func (r *EquipmentSQLite) List(ctx context.Context, search string) ([]models.Equipment, error) {
	q := `SELECT ` + equipmentColumns + ` FROM equipments`
	var args []any
	if search = strings.TrimSpace(search); search != "" {
		q += ` WHERE lower(name) LIKE ? OR lower(location) LIKE ?`
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	q += ` ORDER BY name ASC`
	return r.queryEquipments(ctx, q, args...)
}

// ListByEnvironment returns the units installed in one zone.
func (r *EquipmentSQLite) ListByEnvironment(ctx context.Context, environmentID string) ([]models.Equipment, error) {
	q := `SELECT ` + equipmentColumns + ` FROM equipments WHERE environment_id=? ORDER BY name ASC`
	return r.queryEquipments(ctx, q, environmentID)
}

func (r *EquipmentSQLite) Get(ctx context.Context, id string) (models.Equipment, error) {
	row := r.conn.QueryRowContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipments WHERE id=?`, id)
	e, err := scanEquipment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, fmt.Errorf("equipment %q: %w", id, ErrNotFound)
	}
	return e, err
}

func (r *EquipmentSQLite) Create(ctx context.Context, e models.Equipment) error {
	_, err := r.conn.ExecContext(ctx, insertEquipmentSQL,
		e.ID, e.Name, e.Location, nullable(e.EnvironmentID), e.IsOn, e.CurrentTempC,
		e.TargetTempC, e.Mode, e.EnergyConsumption, e.Efficiency, e.Model,
		e.Capacity, e.Integration,
	)
	return err
}

func (r *EquipmentSQLite) Update(ctx context.Context, e models.Equipment) error {
	res, err := r.conn.ExecContext(ctx, updateEquipmentSQL,
		e.Name, e.Location, nullable(e.EnvironmentID), e.IsOn, e.CurrentTempC,
		e.TargetTempC, e.Mode, e.EnergyConsumption, e.Efficiency, e.Model,
		e.Capacity, e.Integration, e.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("equipment %q: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *EquipmentSQLite) queryEquipments(ctx context.Context, q string, args ...any) ([]models.Equipment, error) {
	rows, err := r.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Equipment, 0, 16)
	for rows.Next() {
		e, err := scanEquipment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanEquipment(scan func(...any) error) (models.Equipment, error) {
	var e models.Equipment
	var envID sql.NullString
	err := scan(
		&e.ID, &e.Name, &e.Location, &envID, &e.IsOn, &e.CurrentTempC,
		&e.TargetTempC, &e.Mode, &e.EnergyConsumption, &e.Efficiency,
		&e.Model, &e.Capacity, &e.Integration,
	)
	if err != nil {
		return models.Equipment{}, err
	}
	if envID.Valid {
		e.EnvironmentID = envID.String
	}
	return e, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
