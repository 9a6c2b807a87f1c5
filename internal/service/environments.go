package service

import (
	"context"
	"math"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
)

type EnvironmentService struct {
	environmentRepo repository.EnvironmentRepo
	equipmentRepo   repository.EquipmentRepo
}

func NewEnvironmentService(environmentRepo repository.EnvironmentRepo, equipmentRepo repository.EquipmentRepo) *EnvironmentService {
	return &EnvironmentService{environmentRepo: environmentRepo, equipmentRepo: equipmentRepo}
}

// List returns every zone with statistics recomputed from the fleet:
// unit count, powered count, mean current temperature over all units in
// the zone and summed draw.
func (s *EnvironmentService) List(ctx context.Context) ([]models.EnvironmentStats, error) {
	envs, err := s.environmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.EnvironmentStats, 0, len(envs))
	for _, env := range envs {
		units, err := s.equipmentRepo.ListByEnvironment(ctx, env.ID)
		if err != nil {
			return nil, err
		}
		stats := models.EnvironmentStats{Environment: env}
		var tempSum float64
		for _, u := range units {
			stats.EquipmentCount++
			tempSum += float64(u.CurrentTempC)
			stats.TotalConsumption += u.EnergyConsumption
			if u.IsOn {
				stats.ActiveEquipment++
			}
		}
		if stats.EquipmentCount > 0 {
			stats.AvgTempC = round1(tempSum / float64(stats.EquipmentCount))
		}
		out = append(out, stats)
	}
	return out, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
