package domain

import "fmt"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Preferences struct {
	Theme        Theme
	ShowSecretID bool
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: DefaultTheme}
}
