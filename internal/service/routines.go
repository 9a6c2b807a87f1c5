package service

import (
	"context"
	"fmt"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
	"climacontrol/internal/routine"

	"github.com/google/uuid"
)

// RoutineDefinition is the wire form of a completed dialog session: the
// whole draft in one payload. It is replayed through the builder so the
// same rules gate interactive editing and API submission.
type RoutineDefinition struct {
	Name             string               `json:"name"`
	Mode             string               `json:"mode"`
	Action           string               `json:"action"`
	Days             []DayDefinition      `json:"days"`
	EquipmentIDs     []string             `json:"equipment_ids"`
	EnvironmentIDs   []string             `json:"environment_ids"`
	TemperatureRules []TempRuleDefinition `json:"temperature_rules"`
	Enabled          *bool                `json:"enabled"`
}

type DayDefinition struct {
	Day   string             `json:"day"`
	Slots []WindowDefinition `json:"slots"`
}

type WindowDefinition struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TempRuleDefinition struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	TemperatureC int    `json:"temperature_c"`
}

// RoutinePreview mirrors the dialog's live summary card.
type RoutinePreview struct {
	Ready   bool   `json:"ready"`
	Summary string `json:"summary"`
	Missing string `json:"missing,omitempty"`
}

type RoutineService struct {
	routineRepo     repository.RoutineRepo
	equipmentRepo   repository.EquipmentRepo
	environmentRepo repository.EnvironmentRepo
	scheduler       Scheduler
}

func NewRoutineService(
	routineRepo repository.RoutineRepo,
	equipmentRepo repository.EquipmentRepo,
	environmentRepo repository.EnvironmentRepo,
	scheduler Scheduler,
) *RoutineService {
	return &RoutineService{
		routineRepo:     routineRepo,
		equipmentRepo:   equipmentRepo,
		environmentRepo: environmentRepo,
		scheduler:       scheduler,
	}
}

// Create validates the definition through the builder, checks that every
// target exists, persists the routine and reloads the scheduler.
func (s *RoutineService) Create(ctx context.Context, def RoutineDefinition) (models.Routine, error) {
	draft, err := replayDefinition(def)
	if err != nil {
		return models.Routine{}, err
	}
	r, err := draft.Build()
	if err != nil {
		return models.Routine{}, err
	}

	for _, id := range r.EquipmentIDs {
		if _, err := s.equipmentRepo.Get(ctx, id); err != nil {
			return models.Routine{}, fmt.Errorf("target equipment: %w", err)
		}
	}
	for _, id := range r.EnvironmentIDs {
		if _, err := s.environmentRepo.Get(ctx, id); err != nil {
			return models.Routine{}, fmt.Errorf("target environment: %w", err)
		}
	}

	r.ID = uuid.NewString()
	r.Enabled = def.Enabled == nil || *def.Enabled
	if err := s.routineRepo.Create(ctx, r); err != nil {
		return models.Routine{}, err
	}
	if err := s.scheduler.Sync(ctx); err != nil {
		return models.Routine{}, err
	}
	return r, nil
}

// Preview reports readiness and the generated summary for an
// in-progress definition without persisting anything. Malformed times
// or modes still error; an incomplete draft does not.
func (s *RoutineService) Preview(def RoutineDefinition) (RoutinePreview, error) {
	draft, err := replayDefinition(def)
	if err != nil {
		return RoutinePreview{}, err
	}
	p := RoutinePreview{Ready: draft.Ready(), Summary: draft.Summary()}
	if err := draft.Validate(); err != nil {
		p.Missing = err.Error()
	}
	return p, nil
}

func (s *RoutineService) List(ctx context.Context) ([]models.Routine, error) {
	return s.routineRepo.List(ctx)
}

func (s *RoutineService) Get(ctx context.Context, id string) (models.Routine, error) {
	return s.routineRepo.Get(ctx, id)
}

func (s *RoutineService) SetEnabled(ctx context.Context, id string, enabled bool) (models.Routine, error) {
	if err := s.routineRepo.SetEnabled(ctx, id, enabled); err != nil {
		return models.Routine{}, err
	}
	if err := s.scheduler.Sync(ctx); err != nil {
		return models.Routine{}, err
	}
	return s.routineRepo.Get(ctx, id)
}

func (s *RoutineService) Delete(ctx context.Context, id string) error {
	if err := s.routineRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.scheduler.Sync(ctx)
}

// replayDefinition feeds the payload through the builder operations.
func replayDefinition(def RoutineDefinition) (*routine.Draft, error) {
	mode := def.Mode
	if mode == "" {
		mode = models.ScheduleSimple
	}
	draft, err := routine.NewDraft(mode)
	if err != nil {
		return nil, err
	}
	draft.SetName(def.Name)
	if def.Action != "" {
		if err := draft.SetAction(def.Action); err != nil {
			return nil, err
		}
	}

	for _, day := range def.Days {
		id := routine.DayID(day.Day)
		if err := draft.ActivateDay(id); err != nil {
			return nil, err
		}
		for i, w := range day.Slots {
			var slotID string
			if i == 0 {
				slotID = draft.Slots(id)[0].ID
			} else {
				slot, err := draft.AddSlot(id)
				if err != nil {
					return nil, err
				}
				slotID = slot.ID
			}
			window, err := parseWindow(w.Start, w.End)
			if err != nil {
				return nil, err
			}
			if err := setSlotWindow(draft, id, slotID, window); err != nil {
				return nil, err
			}
		}
	}

	for _, id := range dedupe(def.EquipmentIDs) {
		draft.ToggleEquipment(id)
	}
	for _, id := range dedupe(def.EnvironmentIDs) {
		draft.ToggleEnvironment(id)
	}

	for _, tr := range def.TemperatureRules {
		rule, err := draft.AddTemperatureRule()
		if err != nil {
			return nil, err
		}
		window, err := parseWindow(tr.Start, tr.End)
		if err != nil {
			return nil, err
		}
		if err := setRuleWindow(draft, rule, window); err != nil {
			return nil, err
		}
		if err := draft.SetRuleTemperature(rule.ID, tr.TemperatureC); err != nil {
			return nil, err
		}
	}

	return draft, nil
}

func parseWindow(start, end string) (routine.Window, error) {
	s, err := routine.ParseClock(start)
	if err != nil {
		return routine.Window{}, err
	}
	e, err := routine.ParseClock(end)
	if err != nil {
		return routine.Window{}, err
	}
	return routine.NewWindow(s, e)
}

// setSlotWindow orders the two bound updates so no intermediate state
// collapses to zero length.
func setSlotWindow(draft *routine.Draft, day routine.DayID, slotID string, w routine.Window) error {
	current := routine.Window{}
	for _, s := range draft.Slots(day) {
		if s.ID == slotID {
			current = s.Window
			break
		}
	}
	if w.Start == current.End {
		if err := draft.UpdateSlot(day, slotID, routine.FieldEnd, w.End); err != nil {
			return err
		}
		return draft.UpdateSlot(day, slotID, routine.FieldStart, w.Start)
	}
	if err := draft.UpdateSlot(day, slotID, routine.FieldStart, w.Start); err != nil {
		return err
	}
	return draft.UpdateSlot(day, slotID, routine.FieldEnd, w.End)
}

func setRuleWindow(draft *routine.Draft, rule routine.TemperatureRule, w routine.Window) error {
	if w.Start == rule.Window.End {
		if err := draft.UpdateRuleWindow(rule.ID, routine.FieldEnd, w.End); err != nil {
			return err
		}
		return draft.UpdateRuleWindow(rule.ID, routine.FieldStart, w.Start)
	}
	if err := draft.UpdateRuleWindow(rule.ID, routine.FieldStart, w.Start); err != nil {
		return err
	}
	return draft.UpdateRuleWindow(rule.ID, routine.FieldEnd, w.End)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
