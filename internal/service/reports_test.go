package service

import (
	"context"
	"testing"

	"climacontrol/internal/models"
)

func reportFleet() []models.Equipment {
	return []models.Equipment{
		{ID: "ac-1", EnvironmentID: "env-1", IsOn: true, CurrentTempC: 22, Capacity: 12000, EnergyConsumption: 9600, Efficiency: 92},
		{ID: "ac-2", EnvironmentID: "env-2", IsOn: true, CurrentTempC: 23, Capacity: 9000, EnergyConsumption: 7200, Efficiency: 88},
		{ID: "ac-3", EnvironmentID: "env-1", IsOn: false, CurrentTempC: 26, Capacity: 18000, EnergyConsumption: 0, Efficiency: 95},
		{ID: "ac-4", EnvironmentID: "env-2", IsOn: false, CurrentTempC: 27, Capacity: 7500, EnergyConsumption: 0, Efficiency: 72},
	}
}

func TestReportServiceOverview(t *testing.T) {
	equipment := newFakeEquipmentRepo(reportFleet()...)
	envs := &fakeEnvironmentRepo{}
	svc := NewReportService(equipment, NewEnvironmentService(envs, equipment))

	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if o.TotalEquipments != 4 || o.ActiveEquipments != 2 {
		t.Fatalf("counts = %d/%d, want 4/2", o.TotalEquipments, o.ActiveEquipments)
	}
	if o.TotalConsumptionW != 16800 {
		t.Fatalf("consumption = %.1f, want 16800", o.TotalConsumptionW)
	}
	// Mean temperature counts powered units only: (22+23)/2 rounded.
	if o.AvgTemperatureC != 23 {
		t.Fatalf("avg temp = %d, want 23", o.AvgTemperatureC)
	}
	// (92+88+95+72)/4 = 86.75 -> 86.8
	if o.AvgEfficiencyPct != 86.8 {
		t.Fatalf("avg efficiency = %.1f, want 86.8", o.AvgEfficiencyPct)
	}
}

func TestReportServiceOverviewEmptyFleet(t *testing.T) {
	svc := NewReportService(newFakeEquipmentRepo(), NewEnvironmentService(&fakeEnvironmentRepo{}, newFakeEquipmentRepo()))

	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if o != (Overview{}) {
		t.Fatalf("empty fleet overview = %+v", o)
	}
}

func TestReportServiceEnergy(t *testing.T) {
	equipment := newFakeEquipmentRepo(reportFleet()...)
	envs := &fakeEnvironmentRepo{envs: []models.Environment{
		{ID: "env-1", Name: "Térreo"},
		{ID: "env-2", Name: "1º Andar"},
	}}
	svc := NewReportService(equipment, NewEnvironmentService(envs, equipment))

	r, err := svc.Energy(context.Background())
	if err != nil {
		t.Fatalf("energy: %v", err)
	}
	// Baseline: (12000+9000+18000+7500) * 0.8 = 37200.
	if r.BaselineConsumptionW != 37200 {
		t.Fatalf("baseline = %.1f, want 37200", r.BaselineConsumptionW)
	}
	// 1 - 16800/37200 = 0.5483... -> 54.8%.
	if r.SavingsPct != 54.8 {
		t.Fatalf("savings = %.1f, want 54.8", r.SavingsPct)
	}
	if len(r.Environments) != 2 {
		t.Fatalf("environments = %d, want 2", len(r.Environments))
	}

	terreo := r.Environments[0]
	if terreo.EquipmentCount != 2 || terreo.ActiveEquipment != 1 {
		t.Fatalf("Térreo counts = %d/%d", terreo.EquipmentCount, terreo.ActiveEquipment)
	}
	// Zone mean temperature covers every unit, powered or not: (22+26)/2.
	if terreo.AvgTempC != 24 {
		t.Fatalf("Térreo avg temp = %.1f, want 24", terreo.AvgTempC)
	}
	if terreo.TotalConsumption != 9600 {
		t.Fatalf("Térreo consumption = %.1f, want 9600", terreo.TotalConsumption)
	}
}
