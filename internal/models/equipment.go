package models

// Operating modes accepted by the units.
const (
	ModeCool = "cool"
	ModeHeat = "heat"
	ModeAuto = "auto"
	ModeFan  = "fan"
)

// Supported integration protocols.
const (
	IntegrationBrise = "BRISE"
	IntegrationSmart = "SMART"
)

// OnLoadFactor converts rated capacity into draw while a unit is powered:
// consumption_w = capacity * OnLoadFactor when on, 0 when off.
const OnLoadFactor = 0.8

// Equipment is one controllable climate unit.
type Equipment struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Location          string  `json:"location"`
	EnvironmentID     string  `json:"environment_id,omitempty"`
	IsOn              bool    `json:"is_on"`
	CurrentTempC      int     `json:"current_temp_c"`
	TargetTempC       int     `json:"target_temp_c"`
	Mode              string  `json:"mode"` // cool | heat | auto | fan
	EnergyConsumption float64 `json:"energy_consumption_w"`
	Efficiency        float64 `json:"efficiency_pct"`
	Model             string  `json:"model"`
	Capacity          int     `json:"capacity_btu"` // BTU/h
	Integration       string  `json:"integration"`  // BRISE | SMART
}

// IsValidMode reports whether m is one of the accepted operating modes.
func IsValidMode(m string) bool {
	switch m {
	case ModeCool, ModeHeat, ModeAuto, ModeFan:
		return true
	}
	return false
}
