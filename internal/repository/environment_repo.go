package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"climacontrol/internal/models"
)

type EnvironmentSQLite struct {
	conn *sql.DB
}

func NewEnvironmentSQLite(conn *sql.DB) *EnvironmentSQLite {
	return &EnvironmentSQLite{conn: conn}
}

func (r *EnvironmentSQLite) List(ctx context.Context) ([]models.Environment, error) {
	rows, err := r.conn.QueryContext(ctx, `SELECT id, name FROM environments ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Environment, 0, 8)
	for rows.Next() {
		var e models.Environment
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EnvironmentSQLite) Get(ctx context.Context, id string) (models.Environment, error) {
	var e models.Environment
	err := r.conn.QueryRowContext(ctx, `SELECT id, name FROM environments WHERE id=?`, id).
		Scan(&e.ID, &e.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Environment{}, fmt.Errorf("environment %q: %w", id, ErrNotFound)
	}
	return e, err
}

func (r *EnvironmentSQLite) Create(ctx context.Context, e models.Environment) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO environments (id, name) VALUES (?, ?)`, e.ID, e.Name)
	return err
}
