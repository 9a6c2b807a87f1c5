package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"climacontrol/internal/models"

	"github.com/google/uuid"
)

type AlertSQLite struct {
	conn *sql.DB
}

func NewAlertSQLite(conn *sql.DB) *AlertSQLite {
	return &AlertSQLite{conn: conn}
}

// List returns alerts newest first, optionally filtered by severity.
func (r *AlertSQLite) List(ctx context.Context, alertType string) ([]models.Alert, error) {
	q := `SELECT id, type, message, occurred_at, equipment_id FROM alerts`
	var args []any
	if alertType = strings.TrimSpace(strings.ToLower(alertType)); alertType != "" {
		q += ` WHERE type=?`
		args = append(args, alertType)
	}
	q += ` ORDER BY occurred_at DESC`

	rows, err := r.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Alert, 0, 16)
	for rows.Next() {
		var a models.Alert
		var equipmentID sql.NullString
		if err := rows.Scan(&a.ID, &a.Type, &a.Message, &a.Timestamp, &equipmentID); err != nil {
			return nil, err
		}
		if equipmentID.Valid {
			a.EquipmentID = equipmentID.String
		}
		a.Timestamp = a.Timestamp.UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts an alert. A missing ID or Timestamp is filled in.
func (r *AlertSQLite) Create(ctx context.Context, a models.Alert) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	} else {
		a.Timestamp = a.Timestamp.UTC()
	}
	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO alerts (id, type, message, occurred_at, equipment_id)
		VALUES (?, ?, ?, ?, ?)
	`, a.ID, a.Type, a.Message, a.Timestamp, nullable(a.EquipmentID))
	return err
}

func (r *AlertSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM alerts WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("alert %q: %w", id, ErrNotFound)
	}
	return nil
}
