package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette.
type Theme struct {
	Name    string
	Text    lipgloss.Color
	Accent  lipgloss.Color
	Correct lipgloss.Color
	Wrong   lipgloss.Color
	Pending lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Flash   lipgloss.Color
}

// Themes lists the palettes in cycling order.
var Themes = []Theme{
	{
		Name:    "default",
		Text:    lipgloss.Color("#F8FAFC"),
		Accent:  lipgloss.Color("#34D399"),
		Correct: lipgloss.Color("#34D399"),
		Wrong:   lipgloss.Color("#F87171"),
		Pending: lipgloss.Color("#94A3B8"),
		Muted:   lipgloss.Color("#64748B"),
		Border:  lipgloss.Color("#334155"),
		Flash:   lipgloss.Color("#064E3B"),
	},
	{
		Name:    "neon",
		Text:    lipgloss.Color("#34D399"),
		Accent:  lipgloss.Color("#10B981"),
		Correct: lipgloss.Color("#6EE7B7"),
		Wrong:   lipgloss.Color("#F472B6"),
		Pending: lipgloss.Color("#047857"),
		Muted:   lipgloss.Color("#065F46"),
		Border:  lipgloss.Color("#10B981"),
		Flash:   lipgloss.Color("#022C22"),
	},
	{
		Name:    "retro",
		Text:    lipgloss.Color("#FDE68A"),
		Accent:  lipgloss.Color("#F59E0B"),
		Correct: lipgloss.Color("#FCD34D"),
		Wrong:   lipgloss.Color("#EF4444"),
		Pending: lipgloss.Color("#B45309"),
		Muted:   lipgloss.Color("#92400E"),
		Border:  lipgloss.Color("#B45309"),
		Flash:   lipgloss.Color("#78350F"),
	},
	{
		Name:    "dark",
		Text:    lipgloss.Color("#D4D4D8"),
		Accent:  lipgloss.Color("#A1A1AA"),
		Correct: lipgloss.Color("#E4E4E7"),
		Wrong:   lipgloss.Color("#FB7185"),
		Pending: lipgloss.Color("#71717A"),
		Muted:   lipgloss.Color("#52525B"),
		Border:  lipgloss.Color("#27272A"),
		Flash:   lipgloss.Color("#18181B"),
	},
}

// ThemeByName returns the named theme, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func nextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

type styles struct {
	text     lipgloss.Style
	title    lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
	pending  lipgloss.Style
	next     lipgloss.Style
	cursor   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	panel    lipgloss.Style
	flash    lipgloss.Style
	unlocked lipgloss.Style
}

func newStyles(t Theme) styles {
	pending := lipgloss.NewStyle().Foreground(t.Pending)
	return styles{
		text:     lipgloss.NewStyle().Foreground(t.Text),
		title:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		correct:  lipgloss.NewStyle().Foreground(t.Correct),
		wrong:    lipgloss.NewStyle().Foreground(t.Wrong),
		pending:  pending,
		next:     lipgloss.NewStyle().Foreground(t.Muted),
		cursor:   pending.Underline(true),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		selected: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1),
		flash:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Background(t.Flash).Padding(0, 1),
		unlocked: lipgloss.NewStyle().Foreground(t.Correct).Bold(true),
	}
}
