package routine

import (
	"fmt"
	"strings"

	"climacontrol/internal/models"
)

// Summary derives the human-readable description of the draft, in the
// wording of the routine dialog. It is a pure function of the draft's
// current state: same selections, same text. Mirroring the dialog, it
// returns "" until a name, a day and a target have been chosen.
func (d *Draft) Summary() string {
	if d.name == "" || len(d.schedules) == 0 ||
		(len(d.equipment) == 0 && len(d.environments) == 0) {
		return ""
	}

	var b strings.Builder
	b.WriteString(d.name)
	b.WriteString(" será executada ")
	b.WriteString(d.daysPhrase())
	if windows := d.windowsPhrase(); windows != "" {
		b.WriteString(" ")
		b.WriteString(windows)
	}
	b.WriteString(", ")
	b.WriteString(actionVerb(d.action))
	b.WriteString(" ")
	b.WriteString(d.targetsPhrase())
	b.WriteString(".")
	return b.String()
}

func (d *Draft) daysPhrase() string {
	days := d.ActiveDays()
	if len(days) == len(Week) {
		return "todos os dias"
	}
	labels := make([]string, 0, len(days))
	for _, id := range days {
		day, _ := DayByID(id)
		labels = append(labels, day.Label)
	}
	return "nos dias: " + strings.Join(labels, ", ")
}

// windowsPhrase lists the distinct windows across all active days in
// week order, joined with "e".
func (d *Draft) windowsPhrase() string {
	seen := make(map[Window]bool)
	var parts []string
	for _, id := range d.ActiveDays() {
		for _, slot := range d.schedules[id] {
			if seen[slot.Window] {
				continue
			}
			seen[slot.Window] = true
			parts = append(parts, fmt.Sprintf("das %s às %s",
				slot.Window.Start, slot.Window.End))
		}
	}
	return strings.Join(parts, " e ")
}

func (d *Draft) targetsPhrase() string {
	var parts []string
	if n := len(d.equipment); n > 0 {
		parts = append(parts, fmt.Sprintf("%d equipamento(s)", n))
	}
	if n := len(d.environments); n > 0 {
		parts = append(parts, fmt.Sprintf("%d ambiente(s)", n))
	}
	return strings.Join(parts, " e ")
}

func actionVerb(action string) string {
	switch action {
	case models.ActionTurnOn:
		return "ligando"
	case models.ActionSetTemp:
		return "ajustando a temperatura de"
	default:
		return "desligando"
	}
}
