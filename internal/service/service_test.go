package service

import (
	"context"
	"fmt"
	"sort"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
)

// In-memory fakes shared by the service tests.

type fakeEquipmentRepo struct {
	units map[string]models.Equipment
}

func newFakeEquipmentRepo(units ...models.Equipment) *fakeEquipmentRepo {
	r := &fakeEquipmentRepo{units: make(map[string]models.Equipment)}
	for _, u := range units {
		r.units[u.ID] = u
	}
	return r
}

func (r *fakeEquipmentRepo) List(_ context.Context, _ string) ([]models.Equipment, error) {
	ids := make([]string, 0, len(r.units))
	for id := range r.units {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]models.Equipment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.units[id])
	}
	return out, nil
}

func (r *fakeEquipmentRepo) ListByEnvironment(ctx context.Context, environmentID string) ([]models.Equipment, error) {
	all, _ := r.List(ctx, "")
	out := make([]models.Equipment, 0)
	for _, u := range all {
		if u.EnvironmentID == environmentID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeEquipmentRepo) Get(_ context.Context, id string) (models.Equipment, error) {
	u, ok := r.units[id]
	if !ok {
		return models.Equipment{}, fmt.Errorf("equipment %q: %w", id, repository.ErrNotFound)
	}
	return u, nil
}

func (r *fakeEquipmentRepo) Create(_ context.Context, e models.Equipment) error {
	r.units[e.ID] = e
	return nil
}

func (r *fakeEquipmentRepo) Update(_ context.Context, e models.Equipment) error {
	if _, ok := r.units[e.ID]; !ok {
		return fmt.Errorf("equipment %q: %w", e.ID, repository.ErrNotFound)
	}
	r.units[e.ID] = e
	return nil
}

type fakeEnvironmentRepo struct {
	envs []models.Environment
}

func (r *fakeEnvironmentRepo) List(_ context.Context) ([]models.Environment, error) {
	return r.envs, nil
}

func (r *fakeEnvironmentRepo) Get(_ context.Context, id string) (models.Environment, error) {
	for _, e := range r.envs {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Environment{}, fmt.Errorf("environment %q: %w", id, repository.ErrNotFound)
}

func (r *fakeEnvironmentRepo) Create(_ context.Context, e models.Environment) error {
	r.envs = append(r.envs, e)
	return nil
}

type fakeRoutineRepo struct {
	routines []models.Routine
}

func (r *fakeRoutineRepo) Create(_ context.Context, rt models.Routine) error {
	r.routines = append(r.routines, rt)
	return nil
}

func (r *fakeRoutineRepo) List(_ context.Context) ([]models.Routine, error) {
	return r.routines, nil
}

func (r *fakeRoutineRepo) ListEnabled(_ context.Context) ([]models.Routine, error) {
	out := make([]models.Routine, 0, len(r.routines))
	for _, rt := range r.routines {
		if rt.Enabled {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRoutineRepo) Get(_ context.Context, id string) (models.Routine, error) {
	for _, rt := range r.routines {
		if rt.ID == id {
			return rt, nil
		}
	}
	return models.Routine{}, fmt.Errorf("routine %q: %w", id, repository.ErrNotFound)
}

func (r *fakeRoutineRepo) SetEnabled(_ context.Context, id string, enabled bool) error {
	for i, rt := range r.routines {
		if rt.ID == id {
			r.routines[i].Enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("routine %q: %w", id, repository.ErrNotFound)
}

func (r *fakeRoutineRepo) Delete(_ context.Context, id string) error {
	for i, rt := range r.routines {
		if rt.ID == id {
			r.routines = append(r.routines[:i], r.routines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("routine %q: %w", id, repository.ErrNotFound)
}

type fakeAlertRepo struct {
	alerts []models.Alert
}

func (r *fakeAlertRepo) List(_ context.Context, alertType string) ([]models.Alert, error) {
	if alertType == "" {
		return r.alerts, nil
	}
	out := make([]models.Alert, 0)
	for _, a := range r.alerts {
		if a.Type == alertType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) Create(_ context.Context, a models.Alert) error {
	r.alerts = append(r.alerts, a)
	return nil
}

func (r *fakeAlertRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.alerts {
		if a.ID == id {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("alert %q: %w", id, repository.ErrNotFound)
}

type fakeSettingsRepo struct {
	values map[string]string
}

func (r *fakeSettingsRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("setting %q: %w", key, repository.ErrNotFound)
	}
	return v, nil
}

func (r *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[key] = value
	return nil
}

// fakeScheduler records Sync calls so routine tests can assert the
// reload happened without spinning up cron.
type fakeScheduler struct {
	syncs int
}

func (s *fakeScheduler) Start()                        {}
func (s *fakeScheduler) Stop()                         {}
func (s *fakeScheduler) Sync(_ context.Context) error { s.syncs++; return nil }
