package service

import (
	"context"

	"climacontrol/internal/logger"
	"climacontrol/internal/models"
	"climacontrol/internal/repository"
)

// Equipments exposes control operations over the climate units.
type Equipments interface {
	List(ctx context.Context, search string) ([]models.Equipment, error)
	Get(ctx context.Context, id string) (models.Equipment, error)
	Create(ctx context.Context, p CreateEquipmentParams) (models.Equipment, error)
	Toggle(ctx context.Context, id string) (models.Equipment, error)
	SetPower(ctx context.Context, id string, on bool) (models.Equipment, error)
	SetTarget(ctx context.Context, id string, tempC int) (models.Equipment, error)
	SetMode(ctx context.Context, id, mode string) (models.Equipment, error)
}

// Environments exposes the zones with their derived fleet statistics.
type Environments interface {
	List(ctx context.Context) ([]models.EnvironmentStats, error)
}

// Routines builds, stores and manages automation routines.
type Routines interface {
	Create(ctx context.Context, def RoutineDefinition) (models.Routine, error)
	Preview(def RoutineDefinition) (RoutinePreview, error)
	List(ctx context.Context) ([]models.Routine, error)
	Get(ctx context.Context, id string) (models.Routine, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (models.Routine, error)
	Delete(ctx context.Context, id string) error
}

// Alerts exposes the notification feed with filtering and dismissal.
type Alerts interface {
	List(ctx context.Context, alertType string) ([]models.Alert, error)
	Dismiss(ctx context.Context, id string) error
}

// Reports derives the dashboard and energy figures from current state.
type Reports interface {
	Overview(ctx context.Context) (Overview, error)
	Energy(ctx context.Context) (EnergyReport, error)
}

// Settings reads and writes the dashboard preferences.
type Settings interface {
	Theme(ctx context.Context) (ThemeSetting, error)
	SetTheme(ctx context.Context, id string) (ThemeSetting, error)
}

// Scheduler runs enabled routines on their cron schedule.
// Stop via main() for graceful shutdown.
type Scheduler interface {
	Start()
	Stop()
	Sync(ctx context.Context) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Equipments
	Environments
	Routines
	Alerts
	Reports
	Settings
	Scheduler
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	equipments := NewEquipmentService(repos.Equipments, repos.Alerts)
	environments := NewEnvironmentService(repos.Environments, repos.Equipments)
	scheduler := NewSchedulerService(repos.Routines, repos.Equipments, equipments, log)
	return &Service{
		Equipments:   equipments,
		Environments: environments,
		Routines:     NewRoutineService(repos.Routines, repos.Equipments, repos.Environments, scheduler),
		Alerts:       NewAlertService(repos.Alerts),
		Reports:      NewReportService(repos.Equipments, environments),
		Settings:     NewSettingsService(repos.Settings),
		Scheduler:    scheduler,
	}
}
