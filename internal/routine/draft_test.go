package routine

import (
	"errors"
	"testing"

	"climacontrol/internal/models"
)

func newOverlayDraft(t *testing.T) *Draft {
	t.Helper()
	d, err := NewDraft(models.ScheduleGlobalOverlay)
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	return d
}

func TestNewDraft_RejectsUnknownMode(t *testing.T) {
	if _, err := NewDraft("weekly"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestDraft_ActivateDay_CreatesDefaultSlotAndIsIdempotent(t *testing.T) {
	d := newOverlayDraft(t)

	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	slots := d.Slots(Monday)
	if len(slots) != 1 {
		t.Fatalf("expected 1 default slot, got %d", len(slots))
	}
	if got := slots[0].Window; got.Start.String() != "09:00" || got.End.String() != "17:00" {
		t.Fatalf("default slot = %v, want 09:00–17:00", got)
	}

	// Re-activating must not touch the slot list.
	if _, err := d.AddSlot(Monday); err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay again: %v", err)
	}
	if got := len(d.Slots(Monday)); got != 2 {
		t.Fatalf("re-activation changed slot count: %d", got)
	}
}

func TestDraft_ActiveDays_TracksActivationsAndDeactivations(t *testing.T) {
	d := newOverlayDraft(t)
	for _, day := range []DayID{Sunday, Wednesday, Monday} {
		if err := d.ActivateDay(day); err != nil {
			t.Fatalf("ActivateDay(%s): %v", day, err)
		}
	}
	if err := d.DeactivateDay(Wednesday); err != nil {
		t.Fatalf("DeactivateDay: %v", err)
	}

	got := d.ActiveDays()
	want := []DayID{Monday, Sunday} // week order, not activation order
	if len(got) != len(want) {
		t.Fatalf("active days = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("active days = %v, want %v", got, want)
		}
	}
	if d.Slots(Wednesday) != nil {
		t.Fatalf("deactivated day should have no slots")
	}
}

func TestDraft_ActivateDay_UnknownDay(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay("someday"); !errors.Is(err, ErrUnknownDay) {
		t.Fatalf("expected ErrUnknownDay, got %v", err)
	}
}

func TestDraft_AddSlot_RejectedInSimpleMode(t *testing.T) {
	d, err := NewDraft(models.ScheduleSimple)
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	if err := d.ActivateDay(Friday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	if _, err := d.AddSlot(Friday); !errors.Is(err, ErrSingleSlotMode) {
		t.Fatalf("expected ErrSingleSlotMode, got %v", err)
	}
}

func TestDraft_RemoveSlot_NeverEmptiesTheDay(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	only := d.Slots(Monday)[0]

	// Last slot: silent no-op.
	if err := d.RemoveSlot(Monday, only.ID); err != nil {
		t.Fatalf("RemoveSlot on last slot: %v", err)
	}
	if got := len(d.Slots(Monday)); got != 1 {
		t.Fatalf("last slot was removed, count = %d", got)
	}

	// With two slots, removal strictly decreases the count by one.
	added, err := d.AddSlot(Monday)
	if err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	if err := d.RemoveSlot(Monday, added.ID); err != nil {
		t.Fatalf("RemoveSlot: %v", err)
	}
	if got := len(d.Slots(Monday)); got != 1 {
		t.Fatalf("expected 1 slot after removal, got %d", got)
	}
}

func TestDraft_RemoveSlot_UnknownSlot(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	if _, err := d.AddSlot(Monday); err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	if err := d.RemoveSlot(Monday, "missing"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestDraft_UpdateSlot_SetsBoundsAndRejectsZeroLength(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay(Saturday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	slot := d.Slots(Saturday)[0]

	if err := d.UpdateSlot(Saturday, slot.ID, FieldStart, MustClock("22:00")); err != nil {
		t.Fatalf("UpdateSlot start: %v", err)
	}
	if err := d.UpdateSlot(Saturday, slot.ID, FieldEnd, MustClock("06:00")); err != nil {
		t.Fatalf("UpdateSlot end: %v", err)
	}
	got := d.Slots(Saturday)[0].Window
	if got.Start.String() != "22:00" || got.End.String() != "06:00" {
		t.Fatalf("window = %v, want 22:00–06:00", got)
	}

	// Collapsing the window to zero length is rejected and leaves the
	// slot untouched.
	if err := d.UpdateSlot(Saturday, slot.ID, FieldEnd, MustClock("22:00")); !errors.Is(err, ErrEqualBounds) {
		t.Fatalf("expected ErrEqualBounds, got %v", err)
	}
	if got := d.Slots(Saturday)[0].Window.End.String(); got != "06:00" {
		t.Fatalf("rejected update mutated slot: end = %s", got)
	}
}

func TestDraft_ToggleTargets(t *testing.T) {
	d := newOverlayDraft(t)
	d.ToggleEquipment("ac-2")
	d.ToggleEquipment("ac-1")
	d.ToggleEnvironment("env-1")
	d.ToggleEquipment("ac-2") // flip back off

	if got := d.EquipmentIDs(); len(got) != 1 || got[0] != "ac-1" {
		t.Fatalf("equipment ids = %v, want [ac-1]", got)
	}
	if d.EnvironmentCount() != 1 {
		t.Fatalf("environment count = %d, want 1", d.EnvironmentCount())
	}
}

func TestDraft_AddTemperatureRule_NeedsOverlayModeAndSlots(t *testing.T) {
	perDay, err := NewDraft(models.SchedulePerDay)
	if err != nil {
		t.Fatalf("NewDraft: %v", err)
	}
	if err := perDay.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	if _, err := perDay.AddTemperatureRule(); !errors.Is(err, ErrRulesUnsupported) {
		t.Fatalf("expected ErrRulesUnsupported, got %v", err)
	}

	d := newOverlayDraft(t)
	if _, err := d.AddTemperatureRule(); !errors.Is(err, ErrNoSlots) {
		t.Fatalf("expected ErrNoSlots, got %v", err)
	}

	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	rule, err := d.AddTemperatureRule()
	if err != nil {
		t.Fatalf("AddTemperatureRule: %v", err)
	}
	if rule.TemperatureC != 23 {
		t.Fatalf("default temperature = %d, want 23", rule.TemperatureC)
	}
	first := d.Slots(Monday)[0].Window
	if rule.Window != first {
		t.Fatalf("rule window = %v, want seeded from first slot %v", rule.Window, first)
	}
}

func TestDraft_SetRuleTemperature_EnforcesBounds(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	rule, err := d.AddTemperatureRule()
	if err != nil {
		t.Fatalf("AddTemperatureRule: %v", err)
	}

	for _, bad := range []int{15, 31, -5, 100} {
		if err := d.SetRuleTemperature(rule.ID, bad); !errors.Is(err, ErrTemperatureRange) {
			t.Fatalf("SetRuleTemperature(%d): expected ErrTemperatureRange, got %v", bad, err)
		}
	}
	if got := d.Rules()[0].TemperatureC; got != 23 {
		t.Fatalf("rejected update mutated rule: %d", got)
	}

	for _, ok := range []int{16, 30, 21} {
		if err := d.SetRuleTemperature(rule.ID, ok); err != nil {
			t.Fatalf("SetRuleTemperature(%d): %v", ok, err)
		}
	}
	if got := d.Rules()[0].TemperatureC; got != 21 {
		t.Fatalf("temperature = %d, want 21", got)
	}
}

func TestDraft_RuleSurvivesOnlyInsideRemainingSlot(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	morning := d.Slots(Monday)[0] // 09:00–17:00
	evening, err := d.AddSlot(Monday)
	if err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	if err := d.UpdateSlot(Monday, evening.ID, FieldStart, MustClock("18:00")); err != nil {
		t.Fatalf("UpdateSlot: %v", err)
	}
	if err := d.UpdateSlot(Monday, evening.ID, FieldEnd, MustClock("23:00")); err != nil {
		t.Fatalf("UpdateSlot: %v", err)
	}

	// One rule inside the morning slot, one inside the evening slot.
	inMorning, err := d.AddTemperatureRule()
	if err != nil {
		t.Fatalf("AddTemperatureRule: %v", err)
	}
	inEvening, err := d.AddTemperatureRule()
	if err != nil {
		t.Fatalf("AddTemperatureRule: %v", err)
	}
	if err := d.UpdateRuleWindow(inEvening.ID, FieldStart, MustClock("19:00")); err != nil {
		t.Fatalf("UpdateRuleWindow: %v", err)
	}
	if err := d.UpdateRuleWindow(inEvening.ID, FieldEnd, MustClock("21:00")); err != nil {
		t.Fatalf("UpdateRuleWindow: %v", err)
	}

	if err := d.RemoveSlot(Monday, morning.ID); err != nil {
		t.Fatalf("RemoveSlot: %v", err)
	}

	rules := d.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 surviving rule, got %d", len(rules))
	}
	if rules[0].ID == inMorning.ID {
		t.Fatalf("rule outside every remaining slot survived")
	}
	if rules[0].ID != inEvening.ID {
		t.Fatalf("wrong rule survived: %+v", rules[0])
	}
}

func TestDraft_DeactivateDay_FiltersRulesLikeSlotRemoval(t *testing.T) {
	d := newOverlayDraft(t)
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	if _, err := d.AddTemperatureRule(); err != nil {
		t.Fatalf("AddTemperatureRule: %v", err)
	}
	if err := d.DeactivateDay(Monday); err != nil {
		t.Fatalf("DeactivateDay: %v", err)
	}
	if got := len(d.Rules()); got != 0 {
		t.Fatalf("rules should not outlive every slot, got %d", got)
	}
}

func TestDraft_SubmissionGate(t *testing.T) {
	d := newOverlayDraft(t)

	// Name empty, one day active, one equipment selected: still not ready.
	if err := d.ActivateDay(Monday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	d.ToggleEquipment("ac-1")
	if d.Ready() {
		t.Fatalf("draft without a name must not be ready")
	}
	if err := d.Validate(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	d.SetName("Economia Noturna")
	if !d.Ready() {
		t.Fatalf("draft with name, day and target must be ready")
	}

	// Drop each condition in turn.
	d.ToggleEquipment("ac-1")
	if err := d.Validate(); !errors.Is(err, ErrNoTargets) {
		t.Fatalf("expected ErrNoTargets, got %v", err)
	}
	d.ToggleEnvironment("env-1") // an environment alone also satisfies the gate
	if !d.Ready() {
		t.Fatalf("environment-only target should satisfy the gate")
	}
	if err := d.DeactivateDay(Monday); err != nil {
		t.Fatalf("DeactivateDay: %v", err)
	}
	if err := d.Validate(); !errors.Is(err, ErrNoActiveDays) {
		t.Fatalf("expected ErrNoActiveDays, got %v", err)
	}
}

func TestDraft_Build_AssemblesRoutine(t *testing.T) {
	d := newOverlayDraft(t)
	d.SetName("Fim de Semana")
	if err := d.SetAction(models.ActionSetTemp); err != nil {
		t.Fatalf("SetAction: %v", err)
	}
	if err := d.ActivateDay(Saturday); err != nil {
		t.Fatalf("ActivateDay: %v", err)
	}
	d.ToggleEquipment("ac-1")
	d.ToggleEnvironment("env-2")
	rule, err := d.AddTemperatureRule()
	if err != nil {
		t.Fatalf("AddTemperatureRule: %v", err)
	}
	if err := d.SetRuleTemperature(rule.ID, 24); err != nil {
		t.Fatalf("SetRuleTemperature: %v", err)
	}

	r, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if r.Name != "Fim de Semana" || r.Mode != models.ScheduleGlobalOverlay || r.Action != models.ActionSetTemp {
		t.Fatalf("unexpected routine header: %+v", r)
	}
	if len(r.Days) != 1 || r.Days[0].Day != "saturday" || len(r.Days[0].Slots) != 1 {
		t.Fatalf("unexpected schedule: %+v", r.Days)
	}
	if r.Days[0].Slots[0].Start != "09:00" || r.Days[0].Slots[0].End != "17:00" {
		t.Fatalf("unexpected slot: %+v", r.Days[0].Slots[0])
	}
	if len(r.EquipmentIDs) != 1 || len(r.EnvironmentIDs) != 1 {
		t.Fatalf("unexpected targets: %+v", r)
	}
	if len(r.TemperatureRules) != 1 || r.TemperatureRules[0].TemperatureC != 24 {
		t.Fatalf("unexpected rules: %+v", r.TemperatureRules)
	}
	if r.Summary == "" {
		t.Fatalf("built routine must carry its summary")
	}
	if r.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt not set")
	}

	// An incomplete draft must not build.
	d.SetName("")
	if _, err := d.Build(); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}
