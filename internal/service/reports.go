package service

import (
	"context"
	"math"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
)

// Overview carries the dashboard headline figures.
type Overview struct {
	TotalEquipments   int     `json:"total_equipments"`
	ActiveEquipments  int     `json:"active_equipments"`
	TotalConsumptionW float64 `json:"total_consumption_w"`
	AvgTemperatureC   int     `json:"avg_temperature_c"`
	AvgEfficiencyPct  float64 `json:"avg_efficiency_pct"`
}

// EnergyReport is the consumption breakdown of the reports page.
// Baseline is what the fleet would draw with every unit powered on.
type EnergyReport struct {
	TotalConsumptionW    float64                   `json:"total_consumption_w"`
	BaselineConsumptionW float64                   `json:"baseline_consumption_w"`
	SavingsPct           float64                   `json:"savings_pct"`
	AvgEfficiencyPct     float64                   `json:"avg_efficiency_pct"`
	Environments         []models.EnvironmentStats `json:"environments"`
}

type ReportService struct {
	equipmentRepo repository.EquipmentRepo
	environments  Environments
}

func NewReportService(equipmentRepo repository.EquipmentRepo, environments Environments) *ReportService {
	return &ReportService{equipmentRepo: equipmentRepo, environments: environments}
}

// Overview derives the dashboard cards: powered count, summed draw,
// the rounded mean temperature of powered units and mean efficiency.
func (s *ReportService) Overview(ctx context.Context) (Overview, error) {
	units, err := s.equipmentRepo.List(ctx, "")
	if err != nil {
		return Overview{}, err
	}

	o := Overview{TotalEquipments: len(units)}
	var activeTempSum, efficiencySum float64
	for _, u := range units {
		o.TotalConsumptionW += u.EnergyConsumption
		efficiencySum += u.Efficiency
		if u.IsOn {
			o.ActiveEquipments++
			activeTempSum += float64(u.CurrentTempC)
		}
	}
	if o.ActiveEquipments > 0 {
		o.AvgTemperatureC = int(math.Round(activeTempSum / float64(o.ActiveEquipments)))
	}
	if len(units) > 0 {
		o.AvgEfficiencyPct = round1(efficiencySum / float64(len(units)))
	}
	return o, nil
}

// Energy compares current draw against the all-on baseline and breaks
// consumption down per zone.
func (s *ReportService) Energy(ctx context.Context) (EnergyReport, error) {
	units, err := s.equipmentRepo.List(ctx, "")
	if err != nil {
		return EnergyReport{}, err
	}

	var r EnergyReport
	var efficiencySum float64
	for _, u := range units {
		r.TotalConsumptionW += u.EnergyConsumption
		r.BaselineConsumptionW += float64(u.Capacity) * models.OnLoadFactor
		efficiencySum += u.Efficiency
	}
	if r.BaselineConsumptionW > 0 {
		r.SavingsPct = round1((1 - r.TotalConsumptionW/r.BaselineConsumptionW) * 100)
	}
	if len(units) > 0 {
		r.AvgEfficiencyPct = round1(efficiencySum / float64(len(units)))
	}

	envs, err := s.environments.List(ctx)
	if err != nil {
		return EnergyReport{}, err
	}
	r.Environments = envs
	return r, nil
}
