package handlers

import (
	"context"

	"climacontrol/internal/models"
	"climacontrol/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service mocks ----

type mockEquipments struct {
	units []models.Equipment
	unit  models.Equipment
	err   error

	lastSearch  string
	lastID      string
	lastOn      bool
	lastTempC   int
	lastMode    string
	lastParams  service.CreateEquipmentParams
	toggleCalls int
}

func (m *mockEquipments) List(_ context.Context, search string) ([]models.Equipment, error) {
	m.lastSearch = search
	return m.units, m.err
}

func (m *mockEquipments) Get(_ context.Context, id string) (models.Equipment, error) {
	m.lastID = id
	return m.unit, m.err
}

func (m *mockEquipments) Create(_ context.Context, p service.CreateEquipmentParams) (models.Equipment, error) {
	m.lastParams = p
	return m.unit, m.err
}

func (m *mockEquipments) Toggle(_ context.Context, id string) (models.Equipment, error) {
	m.lastID = id
	m.toggleCalls++
	return m.unit, m.err
}

func (m *mockEquipments) SetPower(_ context.Context, id string, on bool) (models.Equipment, error) {
	m.lastID = id
	m.lastOn = on
	return m.unit, m.err
}

func (m *mockEquipments) SetTarget(_ context.Context, id string, tempC int) (models.Equipment, error) {
	m.lastID = id
	m.lastTempC = tempC
	return m.unit, m.err
}

func (m *mockEquipments) SetMode(_ context.Context, id, mode string) (models.Equipment, error) {
	m.lastID = id
	m.lastMode = mode
	return m.unit, m.err
}

type mockEnvironments struct {
	envs []models.EnvironmentStats
	err  error
}

func (m *mockEnvironments) List(_ context.Context) ([]models.EnvironmentStats, error) {
	return m.envs, m.err
}

type mockRoutines struct {
	routine  models.Routine
	routines []models.Routine
	preview  service.RoutinePreview
	err      error

	lastDef     service.RoutineDefinition
	lastID      string
	lastEnabled bool
	deleteCalls int
}

func (m *mockRoutines) Create(_ context.Context, def service.RoutineDefinition) (models.Routine, error) {
	m.lastDef = def
	return m.routine, m.err
}

func (m *mockRoutines) Preview(def service.RoutineDefinition) (service.RoutinePreview, error) {
	m.lastDef = def
	return m.preview, m.err
}

func (m *mockRoutines) List(_ context.Context) ([]models.Routine, error) {
	return m.routines, m.err
}

func (m *mockRoutines) Get(_ context.Context, id string) (models.Routine, error) {
	m.lastID = id
	return m.routine, m.err
}

func (m *mockRoutines) SetEnabled(_ context.Context, id string, enabled bool) (models.Routine, error) {
	m.lastID = id
	m.lastEnabled = enabled
	return m.routine, m.err
}

func (m *mockRoutines) Delete(_ context.Context, id string) error {
	m.lastID = id
	m.deleteCalls++
	return m.err
}

type mockAlerts struct {
	alerts []models.Alert
	err    error

	lastType string
	lastID   string
}

func (m *mockAlerts) List(_ context.Context, alertType string) ([]models.Alert, error) {
	m.lastType = alertType
	return m.alerts, m.err
}

func (m *mockAlerts) Dismiss(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}

type mockReports struct {
	overview service.Overview
	energy   service.EnergyReport
	err      error
}

func (m *mockReports) Overview(_ context.Context) (service.Overview, error) {
	return m.overview, m.err
}

func (m *mockReports) Energy(_ context.Context) (service.EnergyReport, error) {
	return m.energy, m.err
}

type mockSettings struct {
	theme service.ThemeSetting
	err   error

	lastTheme string
}

func (m *mockSettings) Theme(_ context.Context) (service.ThemeSetting, error) {
	return m.theme, m.err
}

func (m *mockSettings) SetTheme(_ context.Context, id string) (service.ThemeSetting, error) {
	m.lastTheme = id
	return m.theme, m.err
}

type mockScheduler struct{}

func (m *mockScheduler) Start()                       {}
func (m *mockScheduler) Stop()                        {}
func (m *mockScheduler) Sync(_ context.Context) error { return nil }

// newTestRouter builds a router over the given service composition.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil).InitRoutes()
}
