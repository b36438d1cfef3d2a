package cli

import "github.com/charmbracelet/lipgloss"

// Theme styles checker report headings. A disabled theme leaves text untouched.
type Theme struct {
	Note    lipgloss.Style
	Missing lipgloss.Style
	OK      lipgloss.Style

	enabled bool
}

func DefaultTheme(enabled bool) Theme {
	return Theme{
		Note:    lipgloss.NewStyle().Faint(true),
		Missing: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		OK:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		enabled: enabled,
	}
}

func (t Theme) paint(s lipgloss.Style, text string) string {
	if !t.enabled {
		return text
	}
	return s.Render(text)
}
