package service

import (
	"context"
	"errors"
	"fmt"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
)

const themeKey = "theme"

var ErrUnknownTheme = errors.New("unknown theme")

// ThemeSetting is the stored theme plus the style classes the frontend
// applies at the document root.
type ThemeSetting struct {
	Theme   string   `json:"theme"`
	Classes []string `json:"classes"`
}

type SettingsService struct {
	settingsRepo repository.SettingsRepo
}

func NewSettingsService(settingsRepo repository.SettingsRepo) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Theme returns the stored theme, falling back to the default when none
// was ever chosen.
func (s *SettingsService) Theme(ctx context.Context) (ThemeSetting, error) {
	id, err := s.settingsRepo.Get(ctx, themeKey)
	if errors.Is(err, repository.ErrNotFound) {
		id = models.ThemeDefault
	} else if err != nil {
		return ThemeSetting{}, err
	}
	if !models.IsValidTheme(id) {
		// A stale value from an older build falls back rather than erroring.
		id = models.ThemeDefault
	}
	return ThemeSetting{Theme: id, Classes: models.ThemeClasses(id)}, nil
}

// SetTheme persists a known theme id.
func (s *SettingsService) SetTheme(ctx context.Context, id string) (ThemeSetting, error) {
	if !models.IsValidTheme(id) {
		return ThemeSetting{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	if err := s.settingsRepo.Set(ctx, themeKey, id); err != nil {
		return ThemeSetting{}, err
	}
	return ThemeSetting{Theme: id, Classes: models.ThemeClasses(id)}, nil
}
