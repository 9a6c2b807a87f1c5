package models

// Environment is a physical zone that can be targeted independently of
// the specific units installed in it.
type Environment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnvironmentStats carries per-zone aggregates derived from the current
// equipment fleet. Never stored; recomputed on every read.
type EnvironmentStats struct {
	Environment
	EquipmentCount   int     `json:"equipment_count"`
	ActiveEquipment  int     `json:"active_equipment"`
	AvgTempC         float64 `json:"avg_temp_c"`
	TotalConsumption float64 `json:"total_consumption_w"`
}
