package service

import (
	"context"
	"errors"
	"testing"

	"climacontrol/internal/models"
)

func TestSettingsServiceThemeFallback(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	// Nothing stored yet: default theme with no extra classes.
	ts, err := svc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme: %v", err)
	}
	if ts.Theme != models.ThemeDefault || ts.Classes != nil {
		t.Fatalf("unexpected default: %+v", ts)
	}

	// A stale id from an older build falls back too.
	repo := &fakeSettingsRepo{values: map[string]string{themeKey: "sepia"}}
	svc = NewSettingsService(repo)
	ts, err = svc.Theme(context.Background())
	if err != nil {
		t.Fatalf("theme with stale value: %v", err)
	}
	if ts.Theme != models.ThemeDefault {
		t.Fatalf("stale value not replaced: %+v", ts)
	}
}

func TestSettingsServiceSetTheme(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	ts, err := svc.SetTheme(context.Background(), models.ThemeGreenDark)
	if err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if ts.Theme != models.ThemeGreenDark || len(ts.Classes) != 1 || ts.Classes[0] != "theme-green-dark" {
		t.Fatalf("unexpected setting: %+v", ts)
	}
	if repo.values[themeKey] != models.ThemeGreenDark {
		t.Fatalf("not persisted: %v", repo.values)
	}

	if _, err := svc.SetTheme(context.Background(), "neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("err = %v, want ErrUnknownTheme", err)
	}
}

func TestAlertServiceListValidatesType(t *testing.T) {
	repo := &fakeAlertRepo{alerts: []models.Alert{{ID: "al-1", Type: models.AlertInfo}}}
	svc := NewAlertService(repo)

	if _, err := svc.List(context.Background(), "panic"); !errors.Is(err, ErrUnknownAlertType) {
		t.Fatalf("err = %v, want ErrUnknownAlertType", err)
	}

	// Filter is normalized before validation.
	alerts, err := svc.List(context.Background(), " INFO ")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
}
