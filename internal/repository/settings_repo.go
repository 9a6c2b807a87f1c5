package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SettingsSQLite struct {
	conn *sql.DB
}

func NewSettingsSQLite(conn *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{conn: conn}
}

func (r *SettingsSQLite) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.conn.QueryRowContext(ctx, `SELECT value FROM settings WHERE key=?`, key).
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
	}
	return value, err
}

func (r *SettingsSQLite) Set(ctx context.Context, key, value string) error {
	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`, key, value)
	return err
}
