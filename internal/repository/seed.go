package repository

import (
	"context"
	"fmt"
	"time"

	"climacontrol/internal/models"
)

// Seed loads the demo building into an empty database: three zones,
// six units and a handful of alerts. A non-empty equipment table means
// the database was seeded (or populated) before, so nothing happens.
func Seed(ctx context.Context, repos *Repository) error {
	existing, err := repos.Equipments.List(ctx, "")
	if err != nil {
		return fmt.Errorf("check equipments: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, env := range seedEnvironments {
		if err := repos.Environments.Create(ctx, env); err != nil {
			return fmt.Errorf("seed environment %s: %w", env.ID, err)
		}
	}
	for _, eq := range seedEquipments {
		if err := repos.Equipments.Create(ctx, eq); err != nil {
			return fmt.Errorf("seed equipment %s: %w", eq.ID, err)
		}
	}
	now := time.Now().UTC()
	for i, a := range seedAlerts {
		a.Timestamp = now.Add(-time.Duration(i) * 30 * time.Minute)
		if err := repos.Alerts.Create(ctx, a); err != nil {
			return fmt.Errorf("seed alert %s: %w", a.ID, err)
		}
	}
	return nil
}

var seedEnvironments = []models.Environment{
	{ID: "env-1", Name: "Térreo"},
	{ID: "env-2", Name: "1º Andar"},
	{ID: "env-3", Name: "2º Andar"},
}

var seedEquipments = []models.Equipment{
	{
		ID: "ac-1", Name: "Sala de Reuniões A", Location: "Térreo - Ala Norte",
		EnvironmentID: "env-1", IsOn: true, CurrentTempC: 22, TargetTempC: 21,
		Mode: models.ModeCool, EnergyConsumption: 1250, Efficiency: 87,
		Model: "Samsung AR12345", Capacity: 12000, Integration: models.IntegrationSmart,
	},
	{
		ID: "ac-2", Name: "Escritório Gerência", Location: "1º Andar - Sala 101",
		EnvironmentID: "env-2", IsOn: true, CurrentTempC: 24, TargetTempC: 23,
		Mode: models.ModeCool, EnergyConsumption: 980, Efficiency: 92,
		Model: "LG Dual Inverter", Capacity: 9000, Integration: models.IntegrationBrise,
	},
	{
		ID: "ac-3", Name: "Auditório Principal", Location: "Térreo - Central",
		EnvironmentID: "env-1", IsOn: false, CurrentTempC: 26, TargetTempC: 22,
		Mode: models.ModeAuto, EnergyConsumption: 0, Efficiency: 78,
		Model: "Daikin Split Hi-Wall", Capacity: 18000, Integration: models.IntegrationSmart,
	},
	{
		ID: "ac-4", Name: "Laboratório TI", Location: "2º Andar - Sala 205",
		EnvironmentID: "env-3", IsOn: true, CurrentTempC: 20, TargetTempC: 19,
		Mode: models.ModeCool, EnergyConsumption: 1850, Efficiency: 95,
		Model: "Hitachi Performance", Capacity: 24000, Integration: models.IntegrationSmart,
	},
	{
		ID: "ac-5", Name: "Recepção", Location: "Térreo - Entrada",
		EnvironmentID: "env-1", IsOn: true, CurrentTempC: 23, TargetTempC: 22,
		Mode: models.ModeAuto, EnergyConsumption: 1100, Efficiency: 89,
		Model: "Midea Inverter", Capacity: 12000, Integration: models.IntegrationBrise,
	},
	{
		ID: "ac-6", Name: "Sala de Treinamento", Location: "1º Andar - Sala 110",
		EnvironmentID: "env-2", IsOn: false, CurrentTempC: 25, TargetTempC: 21,
		Mode: models.ModeCool, EnergyConsumption: 0, Efficiency: 82,
		Model: "Carrier Split", Capacity: 18000, Integration: models.IntegrationBrise,
	},
}

var seedAlerts = []models.Alert{
	{
		ID: "alert-1", Type: models.AlertWarning,
		Message: "Laboratório TI - Temperatura muito baixa (19°C)", EquipmentID: "ac-4",
	},
	{
		ID: "alert-2", Type: models.AlertCritical,
		Message: "Sala de Treinamento - Eficiência abaixo de 85%", EquipmentID: "ac-6",
	},
	{
		ID: "alert-3", Type: models.AlertInfo,
		Message: "Auditório Principal desligado há 2 horas", EquipmentID: "ac-3",
	},
}
