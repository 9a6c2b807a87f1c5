package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"climacontrol/internal/models"
	"climacontrol/internal/repository"
)

var ErrUnknownAlertType = errors.New("unknown alert type: must be info, warning or critical")

type AlertService struct {
	alertRepo repository.AlertRepo
}

func NewAlertService(alertRepo repository.AlertRepo) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

// List returns alerts newest first. An empty filter means every
// severity; anything else must name a known one.
func (s *AlertService) List(ctx context.Context, alertType string) ([]models.Alert, error) {
	alertType = strings.TrimSpace(strings.ToLower(alertType))
	if alertType != "" && !models.IsValidAlertType(alertType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlertType, alertType)
	}
	return s.alertRepo.List(ctx, alertType)
}

// Dismiss removes the alert from the feed.
func (s *AlertService) Dismiss(ctx context.Context, id string) error {
	return s.alertRepo.Delete(ctx, id)
}
