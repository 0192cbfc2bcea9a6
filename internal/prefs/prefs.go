// Package prefs persists small per-deployment preferences: the UI
// theme and the patient's organ-donation pledge.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
	"github.com/mohammedahmeduddin04/DocAI/internal/storage"
)

// Themes accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Service reads and writes preference documents.
type Service struct {
	backend storage.Store
}

// NewService creates a preference service over the given store.
func NewService(backend storage.Store) *Service {
	return &Service{backend: backend}
}

// Theme returns the stored theme, defaulting to light.
func (s *Service) Theme(ctx context.Context) (string, error) {
	raw, found, err := s.backend.Get(ctx, storage.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	if !found {
		return ThemeLight, nil
	}
	return string(raw), nil
}

// SetTheme stores the theme. Only light and dark are accepted.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	if err := s.backend.Set(ctx, storage.KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}

// Pledge returns the stored organ pledge. found is false when no
// pledge has been made.
func (s *Service) Pledge(ctx context.Context) (domain.OrganPledge, bool, error) {
	raw, found, err := s.backend.Get(ctx, storage.KeyOrganPledge)
	if err != nil {
		return domain.OrganPledge{}, false, fmt.Errorf("failed to read pledge: %w", err)
	}
	if !found {
		return domain.OrganPledge{}, false, nil
	}

	var pledge domain.OrganPledge
	if err := json.Unmarshal(raw, &pledge); err != nil {
		return domain.OrganPledge{}, false, fmt.Errorf("failed to decode pledge: %w", err)
	}
	return pledge, true, nil
}

// SetPledge replaces the stored organ pledge. At least one organ is
// required.
func (s *Service) SetPledge(ctx context.Context, pledge domain.OrganPledge) error {
	if len(pledge.Organs) == 0 {
		return fmt.Errorf("at least one organ is required")
	}

	raw, err := json.Marshal(pledge)
	if err != nil {
		return fmt.Errorf("failed to encode pledge: %w", err)
	}
	if err := s.backend.Set(ctx, storage.KeyOrganPledge, raw); err != nil {
		return fmt.Errorf("failed to persist pledge: %w", err)
	}
	return nil
}

// ClearPledge withdraws the stored pledge.
func (s *Service) ClearPledge(ctx context.Context) error {
	if err := s.backend.Delete(ctx, storage.KeyOrganPledge); err != nil {
		return fmt.Errorf("failed to clear pledge: %w", err)
	}
	return nil
}
