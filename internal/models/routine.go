package models

import "time"

// Routine actions.
const (
	ActionTurnOff = "turn_off"
	ActionTurnOn  = "turn_on"
	ActionSetTemp = "set_temp"
)

// Schedule variants. The mode selects which editing operations are
// available on a draft.
const (
	ScheduleSimple        = "simple"         // one window per active day
	SchedulePerDay        = "per_day"        // multiple windows per day
	ScheduleGlobalOverlay = "global_overlay" // multiple windows plus temperature overlay rules
)

// RoutineWindow is one HH:MM interval. End at or before Start means the
// window crosses midnight (22:00–06:00).
type RoutineWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RoutineDay is the persisted schedule of one active day.
type RoutineDay struct {
	Day   string          `json:"day"` // monday..sunday
	Slots []RoutineWindow `json:"slots"`
}

// RoutineTempRule is a secondary temperature target overlaid on the
// routine's windows.
type RoutineTempRule struct {
	Window       RoutineWindow `json:"window"`
	TemperatureC int           `json:"temperature_c"`
}

// Routine is a named automation combining a schedule, targets and an
// action. Built and validated by the routine package; persisted as-is.
type Routine struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Mode             string            `json:"mode"`   // simple | per_day | global_overlay
	Action           string            `json:"action"` // turn_off | turn_on | set_temp
	Days             []RoutineDay      `json:"days"`
	EquipmentIDs     []string          `json:"equipment_ids"`
	EnvironmentIDs   []string          `json:"environment_ids"`
	TemperatureRules []RoutineTempRule `json:"temperature_rules,omitempty"`
	Summary          string            `json:"summary"`
	Enabled          bool              `json:"enabled"`
	CreatedAt        time.Time         `json:"created_at"`
}

// IsValidAction reports whether a is a known routine action.
func IsValidAction(a string) bool {
	switch a {
	case ActionTurnOff, ActionTurnOn, ActionSetTemp:
		return true
	}
	return false
}
