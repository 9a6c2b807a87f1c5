package models

// Theme identifiers selectable on the settings page.
const (
	ThemeDefault    = "default"
	ThemeDark       = "dark"
	ThemeGreenLight = "green-light"
	ThemeGreenDark  = "green-dark"
	ThemeRed        = "red"
	ThemePurple     = "purple"
)

// Themes lists every selectable theme in display order.
var Themes = []string{
	ThemeDefault,
	ThemeDark,
	ThemeGreenLight,
	ThemeGreenDark,
	ThemeRed,
	ThemePurple,
}

// IsValidTheme reports whether id names a known theme.
func IsValidTheme(id string) bool {
	for _, t := range Themes {
		if t == id {
			return true
		}
	}
	return false
}

// ThemeClasses maps a theme id to the style classes the frontend applies
// at the document root. The default theme carries no extra class.
func ThemeClasses(id string) []string {
	if id == ThemeDefault {
		return nil
	}
	return []string{"theme-" + id}
}
