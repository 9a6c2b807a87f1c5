package models

import "time"

// Alert severities.
const (
	AlertInfo     = "info"
	AlertWarning  = "warning"
	AlertCritical = "critical"
)

// Alert is one dashboard notification tied to a unit.
type Alert struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // info | warning | critical
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	EquipmentID string    `json:"equipment_id,omitempty"`
}

// IsValidAlertType reports whether t is a known severity.
func IsValidAlertType(t string) bool {
	switch t {
	case AlertInfo, AlertWarning, AlertCritical:
		return true
	}
	return false
}
