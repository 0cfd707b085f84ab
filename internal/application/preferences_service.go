package application

import (
	"context"
	"fmt"

	"github.com/bnema/session-vault-cli/internal/domain"
	"github.com/bnema/session-vault-cli/internal/ports"
)

type PreferencesService struct {
	repo ports.PreferencesRepository
}

func NewPreferencesService(repo ports.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

// GetTheme returns the stored theme, or the default when none is stored.
func (s *PreferencesService) GetTheme(ctx context.Context) (domain.Theme, error) {
	theme, err := s.repo.GetTheme(ctx)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	if theme == "" {
		return domain.DefaultTheme, nil
	}

	return theme, nil
}

func (s *PreferencesService) SetTheme(ctx context.Context, raw string) (domain.Theme, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return "", err
	}

	if err := s.repo.SaveTheme(ctx, theme); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}

	return theme, nil
}

func (s *PreferencesService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	current, err := s.GetTheme(ctx)
	if err != nil {
		return "", err
	}

	return s.SetTheme(ctx, string(current.Toggle()))
}

func (s *PreferencesService) GetShowSecretID(ctx context.Context) (bool, error) {
	show, err := s.repo.GetShowSecretID(ctx)
	if err != nil {
		return false, fmt.Errorf("get secret visibility: %w", err)
	}

	return show, nil
}

func (s *PreferencesService) SetShowSecretID(ctx context.Context, show bool) error {
	if err := s.repo.SaveShowSecretID(ctx, show); err != nil {
		return fmt.Errorf("save secret visibility: %w", err)
	}

	return nil
}

func (s *PreferencesService) ToggleShowSecretID(ctx context.Context) (bool, error) {
	current, err := s.GetShowSecretID(ctx)
	if err != nil {
		return false, err
	}

	if err := s.SetShowSecretID(ctx, !current); err != nil {
		return false, err
	}

	return !current, nil
}

// Load returns both preferences, falling back to defaults for missing values.
func (s *PreferencesService) Load(ctx context.Context) (domain.Preferences, error) {
	theme, err := s.GetTheme(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	show, err := s.GetShowSecretID(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	return domain.Preferences{Theme: theme, ShowSecretID: show}, nil
}
