package repository

import (
	"context"
	"database/sql"
	"errors"

	"climacontrol/internal/models"
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("record not found")

type EquipmentRepo interface {
	List(ctx context.Context, search string) ([]models.Equipment, error)
	ListByEnvironment(ctx context.Context, environmentID string) ([]models.Equipment, error)
	Get(ctx context.Context, id string) (models.Equipment, error)
	Create(ctx context.Context, e models.Equipment) error
	Update(ctx context.Context, e models.Equipment) error
}

type EnvironmentRepo interface {
	List(ctx context.Context) ([]models.Environment, error)
	Get(ctx context.Context, id string) (models.Environment, error)
	Create(ctx context.Context, e models.Environment) error
}

type RoutineRepo interface {
	Create(ctx context.Context, r models.Routine) error
	List(ctx context.Context) ([]models.Routine, error)
	ListEnabled(ctx context.Context) ([]models.Routine, error)
	Get(ctx context.Context, id string) (models.Routine, error)
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}

type AlertRepo interface {
	List(ctx context.Context, alertType string) ([]models.Alert, error)
	Create(ctx context.Context, a models.Alert) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Repository struct {
	Equipments   EquipmentRepo
	Environments EnvironmentRepo
	Routines     RoutineRepo
	Alerts       AlertRepo
	Settings     SettingsRepo
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Equipments:   NewEquipmentSQLite(conn),
		Environments: NewEnvironmentSQLite(conn),
		Routines:     NewRoutineSQLite(conn),
		Alerts:       NewAlertSQLite(conn),
		Settings:     NewSettingsSQLite(conn),
	}
}
