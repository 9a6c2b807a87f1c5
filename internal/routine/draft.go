package routine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"climacontrol/internal/models"

	"github.com/google/uuid"
)

// Default bounds for a freshly activated day and a freshly added rule.
var (
	defaultWindow   = Window{Start: Clock{hour: 9}, End: Clock{hour: 17}}
	defaultRuleTemp = 23
)

// Temperature bounds enforced at the model layer, not by input widgets.
const (
	MinTempC = 16
	MaxTempC = 30
)

// Field selects which bound of a slot or rule an update targets.
type Field string

const (
	FieldStart Field = "start"
	FieldEnd   Field = "end"
)

var (
	ErrUnknownMode      = errors.New("unknown schedule mode")
	ErrUnknownDay       = errors.New("unknown day")
	ErrDayInactive      = errors.New("day is not active")
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrUnknownField     = errors.New("unknown field: must be start or end")
	ErrSingleSlotMode   = errors.New("simple schedules allow one slot per day")
	ErrNoSlots          = errors.New("a temperature rule needs at least one time slot")
	ErrRulesUnsupported = errors.New("temperature rules need a global_overlay schedule")
	ErrTemperatureRange = fmt.Errorf("temperature must be between %d and %d", MinTempC, MaxTempC)
	ErrUnknownAction    = errors.New("unknown action")

	ErrNameRequired = errors.New("routine name is required")
	ErrNoActiveDays = errors.New("at least one day must be active")
	ErrNoTargets    = errors.New("at least one equipment or environment must be selected")
)

// TimeSlot is one operating interval within a day's schedule.
type TimeSlot struct {
	ID     string
	Window Window
}

// TemperatureRule overlays a temperature target on a sub-window of the
// routine's schedule.
type TemperatureRule struct {
	ID           string
	Window       Window
	TemperatureC int
}

// Draft is the in-progress routine being edited. One instance per
// editing session; it owns its state exclusively and every mutation is
// a plain synchronous update.
type Draft struct {
	mode         string
	name         string
	action       string
	schedules    map[DayID][]TimeSlot
	equipment    map[string]bool
	environments map[string]bool
	rules        []TemperatureRule
}

// NewDraft starts an empty draft in the given schedule mode with the
// turn_off action preselected, mirroring the dialog's initial state.
func NewDraft(mode string) (*Draft, error) {
	switch mode {
	case models.ScheduleSimple, models.SchedulePerDay, models.ScheduleGlobalOverlay:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return &Draft{
		mode:         mode,
		action:       models.ActionTurnOff,
		schedules:    make(map[DayID][]TimeSlot),
		equipment:    make(map[string]bool),
		environments: make(map[string]bool),
	}, nil
}

func (d *Draft) Mode() string   { return d.mode }
func (d *Draft) Name() string   { return d.name }
func (d *Draft) Action() string { return d.action }

// SetName replaces the routine name.
func (d *Draft) SetName(name string) { d.name = name }

// SetAction replaces the selected action.
func (d *Draft) SetAction(action string) error {
	if !models.IsValidAction(action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	d.action = action
	return nil
}

// ActivateDay creates the day's schedule with one default slot.
// Activating an already active day is a no-op on its slot list.
func (d *Draft) ActivateDay(day DayID) error {
	if _, ok := DayByID(day); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	if _, active := d.schedules[day]; active {
		return nil
	}
	d.schedules[day] = []TimeSlot{{ID: uuid.NewString(), Window: defaultWindow}}
	return nil
}

// DeactivateDay removes the day's schedule and all its slots. Rules are
// re-filtered through the same survival invariant as RemoveSlot.
func (d *Draft) DeactivateDay(day DayID) error {
	if _, ok := DayByID(day); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	if _, active := d.schedules[day]; !active {
		return nil
	}
	delete(d.schedules, day)
	d.filterRules()
	return nil
}

// ActiveDays returns the active days in week order.
func (d *Draft) ActiveDays() []DayID {
	out := make([]DayID, 0, len(d.schedules))
	for _, day := range Week {
		if _, active := d.schedules[day.ID]; active {
			out = append(out, day.ID)
		}
	}
	return out
}

// Slots returns a copy of the day's slot list, nil when inactive.
func (d *Draft) Slots(day DayID) []TimeSlot {
	slots, active := d.schedules[day]
	if !active {
		return nil
	}
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out
}

// AddSlot appends a new slot with default bounds to an active day and
// returns it. Simple schedules keep exactly one slot per day.
func (d *Draft) AddSlot(day DayID) (TimeSlot, error) {
	slots, active := d.schedules[day]
	if !active {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrDayInactive, day)
	}
	if d.mode == models.ScheduleSimple {
		return TimeSlot{}, ErrSingleSlotMode
	}
	slot := TimeSlot{ID: uuid.NewString(), Window: defaultWindow}
	d.schedules[day] = append(slots, slot)
	return slot, nil
}

// RemoveSlot deletes one slot. Removing the day's last remaining slot
// is a silent no-op: an active day always keeps at least one slot.
// Temperature rules survive the removal only if their window is still
// fully contained in some remaining slot.
func (d *Draft) RemoveSlot(day DayID, slotID string) error {
	slots, active := d.schedules[day]
	if !active {
		return fmt.Errorf("%w: %q", ErrDayInactive, day)
	}
	if len(slots) <= 1 {
		return nil
	}
	idx := slotIndex(slots, slotID)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, slotID)
	}
	d.schedules[day] = append(slots[:idx], slots[idx+1:]...)
	d.filterRules()
	return nil
}

// UpdateSlot replaces one bound of the targeted slot. The update is
// rejected when it would collapse the window to zero length.
func (d *Draft) UpdateSlot(day DayID, slotID string, field Field, value Clock) error {
	slots, active := d.schedules[day]
	if !active {
		return fmt.Errorf("%w: %q", ErrDayInactive, day)
	}
	idx := slotIndex(slots, slotID)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, slotID)
	}
	w := slots[idx].Window
	switch field {
	case FieldStart:
		w.Start = value
	case FieldEnd:
		w.End = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := w.Validate(); err != nil {
		return err
	}
	slots[idx].Window = w
	return nil
}

// ToggleEquipment flips the unit's membership in the target set.
func (d *Draft) ToggleEquipment(id string) {
	toggle(d.equipment, id)
}

// ToggleEnvironment flips the zone's membership in the target set.
func (d *Draft) ToggleEnvironment(id string) {
	toggle(d.environments, id)
}

func (d *Draft) EquipmentIDs() []string   { return sortedKeys(d.equipment) }
func (d *Draft) EnvironmentIDs() []string { return sortedKeys(d.environments) }
func (d *Draft) EquipmentCount() int      { return len(d.equipment) }
func (d *Draft) EnvironmentCount() int    { return len(d.environments) }

// AddTemperatureRule seeds a new rule from the first slot's bounds with
// the default 23°C target. Requires a global_overlay schedule with at
// least one slot.
func (d *Draft) AddTemperatureRule() (TemperatureRule, error) {
	if d.mode != models.ScheduleGlobalOverlay {
		return TemperatureRule{}, ErrRulesUnsupported
	}
	first, ok := d.firstSlot()
	if !ok {
		return TemperatureRule{}, ErrNoSlots
	}
	rule := TemperatureRule{
		ID:           uuid.NewString(),
		Window:       first.Window,
		TemperatureC: defaultRuleTemp,
	}
	d.rules = append(d.rules, rule)
	return rule, nil
}

// UpdateRuleWindow replaces one bound of the targeted rule.
func (d *Draft) UpdateRuleWindow(ruleID string, field Field, value Clock) error {
	idx := ruleIndex(d.rules, ruleID)
	if idx < 0 {
		return nil
	}
	w := d.rules[idx].Window
	switch field {
	case FieldStart:
		w.Start = value
	case FieldEnd:
		w.End = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if err := w.Validate(); err != nil {
		return err
	}
	d.rules[idx].Window = w
	return nil
}

// SetRuleTemperature sets the rule's target, rejecting values outside
// the 16–30°C band regardless of how the input arrived.
func (d *Draft) SetRuleTemperature(ruleID string, tempC int) error {
	if tempC < MinTempC || tempC > MaxTempC {
		return ErrTemperatureRange
	}
	idx := ruleIndex(d.rules, ruleID)
	if idx < 0 {
		return nil
	}
	d.rules[idx].TemperatureC = tempC
	return nil
}

// RemoveTemperatureRule removes a rule by id; unknown ids are ignored.
func (d *Draft) RemoveTemperatureRule(ruleID string) {
	idx := ruleIndex(d.rules, ruleID)
	if idx < 0 {
		return
	}
	d.rules = append(d.rules[:idx], d.rules[idx+1:]...)
}

// Rules returns a copy of the current temperature rules.
func (d *Draft) Rules() []TemperatureRule {
	out := make([]TemperatureRule, len(d.rules))
	copy(out, d.rules)
	return out
}

// Ready reports whether the draft can be submitted: a name, at least
// one active day and at least one target.
func (d *Draft) Ready() bool { return d.Validate() == nil }

// Validate returns the first unmet submission condition.
func (d *Draft) Validate() error {
	if d.name == "" {
		return ErrNameRequired
	}
	if len(d.schedules) == 0 {
		return ErrNoActiveDays
	}
	if len(d.equipment) == 0 && len(d.environments) == 0 {
		return ErrNoTargets
	}
	return nil
}

// Build assembles the completed routine value, or reports why the draft
// is still incomplete. ID, enablement and timestamps belong to the
// caller.
func (d *Draft) Build() (models.Routine, error) {
	if err := d.Validate(); err != nil {
		return models.Routine{}, err
	}
	r := models.Routine{
		Name:           d.name,
		Mode:           d.mode,
		Action:         d.action,
		EquipmentIDs:   d.EquipmentIDs(),
		EnvironmentIDs: d.EnvironmentIDs(),
		Summary:        d.Summary(),
		CreatedAt:      time.Now().UTC(),
	}
	for _, id := range d.ActiveDays() {
		rd := models.RoutineDay{Day: string(id)}
		for _, slot := range d.schedules[id] {
			rd.Slots = append(rd.Slots, models.RoutineWindow{
				Start: slot.Window.Start.String(),
				End:   slot.Window.End.String(),
			})
		}
		r.Days = append(r.Days, rd)
	}
	for _, rule := range d.rules {
		r.TemperatureRules = append(r.TemperatureRules, models.RoutineTempRule{
			Window: models.RoutineWindow{
				Start: rule.Window.Start.String(),
				End:   rule.Window.End.String(),
			},
			TemperatureC: rule.TemperatureC,
		})
	}
	return r, nil
}

// filterRules keeps only rules whose window is fully contained in at
// least one remaining slot, across all active days.
func (d *Draft) filterRules() {
	if len(d.rules) == 0 {
		return
	}
	kept := d.rules[:0]
	for _, rule := range d.rules {
		if d.ruleContained(rule) {
			kept = append(kept, rule)
		}
	}
	d.rules = kept
}

func (d *Draft) ruleContained(rule TemperatureRule) bool {
	for _, slots := range d.schedules {
		for _, slot := range slots {
			if slot.Window.Contains(rule.Window) {
				return true
			}
		}
	}
	return false
}

func (d *Draft) firstSlot() (TimeSlot, bool) {
	for _, day := range d.ActiveDays() {
		if slots := d.schedules[day]; len(slots) > 0 {
			return slots[0], true
		}
	}
	return TimeSlot{}, false
}

func slotIndex(slots []TimeSlot, id string) int {
	for i, s := range slots {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func ruleIndex(rules []TemperatureRule, id string) int {
	for i, r := range rules {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func toggle(set map[string]bool, id string) {
	if set[id] {
		delete(set, id)
		return
	}
	set[id] = true
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
