package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	BarFill    lipgloss.Color
	BarEmpty   lipgloss.Color
}

var palettes = map[string]palette{
	"forest": {
		Background: lipgloss.Color("#10140f"),
		Surface:    lipgloss.Color("#1c241a"),
		Text:       lipgloss.Color("#d8e2d0"),
		Muted:      lipgloss.Color("#7f8c76"),
		Accent:     lipgloss.Color("#8fbf6f"),
		Border:     lipgloss.Color("#3a4a34"),
		Success:    lipgloss.Color("#a3d977"),
		Warning:    lipgloss.Color("#e0c060"),
		Danger:     lipgloss.Color("#d96a5f"),
		BarFill:    lipgloss.Color("#8fbf6f"),
		BarEmpty:   lipgloss.Color("#1c241a"),
	},
	"tundra": {
		Background: lipgloss.Color("#0e1420"),
		Surface:    lipgloss.Color("#18202e"),
		Text:       lipgloss.Color("#dde6f0"),
		Muted:      lipgloss.Color("#7b8a9e"),
		Accent:     lipgloss.Color("#7fb4d9"),
		Border:     lipgloss.Color("#2c3a4e"),
		Success:    lipgloss.Color("#8fd4c1"),
		Warning:    lipgloss.Color("#e8d28a"),
		Danger:     lipgloss.Color("#e08080"),
		BarFill:    lipgloss.Color("#7fb4d9"),
		BarEmpty:   lipgloss.Color("#18202e"),
	},
	"desert": {
		Background: lipgloss.Color("#1d1610"),
		Surface:    lipgloss.Color("#2a2016"),
		Text:       lipgloss.Color("#ecdfc8"),
		Muted:      lipgloss.Color("#a08c6e"),
		Accent:     lipgloss.Color("#e0a050"),
		Border:     lipgloss.Color("#4a3a26"),
		Success:    lipgloss.Color("#b0c070"),
		Warning:    lipgloss.Color("#e8b860"),
		Danger:     lipgloss.Color("#d4705a"),
		BarFill:    lipgloss.Color("#e0a050"),
		BarEmpty:   lipgloss.Color("#2a2016"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["forest"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
