package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"climacontrol/internal/logger"
	"climacontrol/internal/models"
	"climacontrol/internal/repository"
	"climacontrol/internal/routine"

	"github.com/robfig/cron/v3"
)

// SchedulerService registers each enabled routine's time slots as cron
// jobs: one at the slot start applying the action, one at the slot end
// restoring power for on/off actions. Temperature rules fire at their
// own window starts.
type SchedulerService struct {
	routineRepo   repository.RoutineRepo
	equipmentRepo repository.EquipmentRepo
	equipments    Equipments
	log           *logger.Logger

	cron    *cron.Cron
	mu      sync.Mutex
	entries []cron.EntryID
}

func NewSchedulerService(
	routineRepo repository.RoutineRepo,
	equipmentRepo repository.EquipmentRepo,
	equipments Equipments,
	log *logger.Logger,
) *SchedulerService {
	return &SchedulerService{
		routineRepo:   routineRepo,
		equipmentRepo: equipmentRepo,
		equipments:    equipments,
		log:           log,
		cron:          cron.New(),
	}
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *SchedulerService) Stop() {
	<-s.cron.Stop().Done()
}

// Sync drops every registered job and re-registers the currently
// enabled routines. Called after any routine mutation.
func (s *SchedulerService) Sync(ctx context.Context) error {
	routines, err := s.routineRepo.ListEnabled(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]

	for _, r := range routines {
		if err := s.register(r); err != nil {
			return fmt.Errorf("register routine %s: %w", r.ID, err)
		}
	}
	s.log.Infof("scheduler synced: %d routine(s), %d job(s)", len(routines), len(s.entries))
	return nil
}

func (s *SchedulerService) register(r models.Routine) error {
	for _, day := range r.Days {
		id := routine.DayID(day.Day)
		if _, ok := routine.DayByID(id); !ok {
			return fmt.Errorf("unknown day %q", day.Day)
		}
		for _, slot := range day.Slots {
			w, err := parseWindow(slot.Start, slot.End)
			if err != nil {
				return err
			}
			if err := s.addJob(w.Start, id.Weekday(), func() { s.applyAction(r, false) }); err != nil {
				return err
			}
			if r.Action == models.ActionSetTemp {
				continue
			}
			endDay := id.Weekday()
			if w.CrossesMidnight() {
				endDay = (endDay + 1) % 7
			}
			if err := s.addJob(w.End, endDay, func() { s.applyAction(r, true) }); err != nil {
				return err
			}
		}
		for _, rule := range r.TemperatureRules {
			rule := rule
			w, err := parseWindow(rule.Window.Start, rule.Window.End)
			if err != nil {
				return err
			}
			if err := s.addJob(w.Start, id.Weekday(), func() { s.applyTemperature(r, rule.TemperatureC) }); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SchedulerService) addJob(at routine.Clock, day time.Weekday, job func()) error {
	spec := fmt.Sprintf("%d %d * * %d", at.Minute(), at.Hour(), day)
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, id)
	return nil
}

// applyAction sets the power state the routine calls for; inverse=true
// restores the opposite state at the slot end.
func (s *SchedulerService) applyAction(r models.Routine, inverse bool) {
	ctx := context.Background()
	var on bool
	switch r.Action {
	case models.ActionTurnOn:
		on = !inverse
	case models.ActionTurnOff:
		on = inverse
	case models.ActionSetTemp:
		// set_temp routines only act through their temperature rules.
		return
	default:
		s.log.Errorf("routine %s: unknown action %q", r.ID, r.Action)
		return
	}

	ids, err := s.resolveTargets(ctx, r)
	if err != nil {
		s.log.Errorf("routine %s: resolve targets: %v", r.ID, err)
		return
	}
	for _, id := range ids {
		if _, err := s.equipments.SetPower(ctx, id, on); err != nil {
			s.log.Errorf("routine %s: set power on %s: %v", r.ID, id, err)
		}
	}
	s.log.Infow("routine fired", "routine", r.Name, "action", r.Action, "inverse", inverse, "targets", len(ids))
}

func (s *SchedulerService) applyTemperature(r models.Routine, tempC int) {
	ctx := context.Background()
	ids, err := s.resolveTargets(ctx, r)
	if err != nil {
		s.log.Errorf("routine %s: resolve targets: %v", r.ID, err)
		return
	}
	for _, id := range ids {
		if _, err := s.equipments.SetTarget(ctx, id, tempC); err != nil {
			s.log.Errorf("routine %s: set target on %s: %v", r.ID, id, err)
		}
	}
	s.log.Infow("temperature rule fired", "routine", r.Name, "temperature_c", tempC, "targets", len(ids))
}

// resolveTargets expands environment targets into their current units
// and merges them with the directly selected ones.
func (s *SchedulerService) resolveTargets(ctx context.Context, r models.Routine) ([]string, error) {
	ids := append([]string(nil), r.EquipmentIDs...)
	for _, envID := range r.EnvironmentIDs {
		units, err := s.equipmentRepo.ListByEnvironment(ctx, envID)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			ids = append(ids, u.ID)
		}
	}
	return dedupe(ids), nil
}
