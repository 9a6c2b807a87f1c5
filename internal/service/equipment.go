package service

import (
	"context"
	"errors"
	"fmt"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
	"climacontrol/internal/routine"

	"github.com/google/uuid"
)

// Efficiency below this threshold raises a critical alert when the unit
// is powered on.
const lowEfficiencyPct = 85.0

// Defaults applied to freshly registered units.
const (
	defaultCurrentTempC = 24
	defaultTargetTempC  = 22
	defaultEfficiency   = 90.0
)

var (
	ErrInvalidMode        = errors.New("invalid mode: must be cool, heat, auto or fan")
	ErrInvalidIntegration = errors.New("invalid integration: must be BRISE or SMART")
	ErrInvalidCapacity    = errors.New("capacity must be greater than zero")
	ErrNameRequired       = errors.New("equipment name is required")
	ErrTargetOutOfRange   = fmt.Errorf("target temperature must be between %d and %d", routine.MinTempC, routine.MaxTempC)
)

type EquipmentService struct {
	equipmentRepo repository.EquipmentRepo
	alertRepo     repository.AlertRepo
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepo, alertRepo repository.AlertRepo) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo, alertRepo: alertRepo}
}

// CreateEquipmentParams registers a new unit. It starts powered off.
type CreateEquipmentParams struct {
	Name          string
	Location      string
	EnvironmentID string
	Model         string
	Capacity      int
	Integration   string
	Mode          string
	TargetTempC   int
}

func (s *EquipmentService) List(ctx context.Context, search string) ([]models.Equipment, error) {
	return s.equipmentRepo.List(ctx, search)
}

func (s *EquipmentService) Get(ctx context.Context, id string) (models.Equipment, error) {
	return s.equipmentRepo.Get(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, p CreateEquipmentParams) (models.Equipment, error) {
	if p.Name == "" {
		return models.Equipment{}, ErrNameRequired
	}
	if p.Capacity <= 0 {
		return models.Equipment{}, ErrInvalidCapacity
	}
	if p.Integration != models.IntegrationBrise && p.Integration != models.IntegrationSmart {
		return models.Equipment{}, fmt.Errorf("%w: %q", ErrInvalidIntegration, p.Integration)
	}
	mode := p.Mode
	if mode == "" {
		mode = models.ModeAuto
	}
	if !models.IsValidMode(mode) {
		return models.Equipment{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	target := p.TargetTempC
	if target == 0 {
		target = defaultTargetTempC
	}
	if target < routine.MinTempC || target > routine.MaxTempC {
		return models.Equipment{}, ErrTargetOutOfRange
	}

	e := models.Equipment{
		ID:            uuid.NewString(),
		Name:          p.Name,
		Location:      p.Location,
		EnvironmentID: p.EnvironmentID,
		IsOn:          false,
		CurrentTempC:  defaultCurrentTempC,
		TargetTempC:   target,
		Mode:          mode,
		Efficiency:    defaultEfficiency,
		Model:         p.Model,
		Capacity:      p.Capacity,
		Integration:   p.Integration,
	}
	if err := s.equipmentRepo.Create(ctx, e); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}

// Toggle flips the unit's power state. Powering on sets the draw to
// capacity * 0.8 W; powering off drops it to zero.
func (s *EquipmentService) Toggle(ctx context.Context, id string) (models.Equipment, error) {
	e, err := s.equipmentRepo.Get(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}
	return s.applyPower(ctx, e, !e.IsOn)
}

// SetPower drives the unit to an absolute power state. Already being in
// that state is a no-op.
func (s *EquipmentService) SetPower(ctx context.Context, id string, on bool) (models.Equipment, error) {
	e, err := s.equipmentRepo.Get(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}
	if e.IsOn == on {
		return e, nil
	}
	return s.applyPower(ctx, e, on)
}

func (s *EquipmentService) applyPower(ctx context.Context, e models.Equipment, on bool) (models.Equipment, error) {
	e.IsOn = on
	if on {
		e.EnergyConsumption = float64(e.Capacity) * models.OnLoadFactor
	} else {
		e.EnergyConsumption = 0
	}
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return models.Equipment{}, err
	}
	if on && e.Efficiency < lowEfficiencyPct {
		// Best effort; a failed alert never blocks the power change.
		_ = s.alertRepo.Create(ctx, models.Alert{
			Type:        models.AlertCritical,
			Message:     fmt.Sprintf("%s - Eficiência abaixo de %.0f%%", e.Name, lowEfficiencyPct),
			EquipmentID: e.ID,
		})
	}
	return e, nil
}

// SetTarget updates the setpoint, bounded to the 16–30°C band.
func (s *EquipmentService) SetTarget(ctx context.Context, id string, tempC int) (models.Equipment, error) {
	if tempC < routine.MinTempC || tempC > routine.MaxTempC {
		return models.Equipment{}, ErrTargetOutOfRange
	}
	e, err := s.equipmentRepo.Get(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}
	e.TargetTempC = tempC
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}

func (s *EquipmentService) SetMode(ctx context.Context, id, mode string) (models.Equipment, error) {
	if !models.IsValidMode(mode) {
		return models.Equipment{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	e, err := s.equipmentRepo.Get(ctx, id)
	if err != nil {
		return models.Equipment{}, err
	}
	e.Mode = mode
	if err := s.equipmentRepo.Update(ctx, e); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}
