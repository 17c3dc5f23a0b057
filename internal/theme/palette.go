// Package theme holds the habit colour palette and icon catalogue.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Color is a named palette entry.
type Color struct {
	Name string
	Hex  string
}

// Icon is a named glyph shown next to a habit.
type Icon struct {
	Name  string
	Glyph string
}

// FallbackIcon is used when a stored icon name is unknown.
const FallbackIcon = "flame"

// FallbackColor is used when a stored colour name is unknown.
const FallbackColor = "green"

var palette = []Color{
	{Name: "green", Hex: "#86efac"},
	{Name: "blue", Hex: "#93c5fd"},
	{Name: "purple", Hex: "#d8b4fe"},
	{Name: "red", Hex: "#fca5a5"},
	{Name: "yellow", Hex: "#fde047"},
	{Name: "pink", Hex: "#f9a8d4"},
}

var icons = []Icon{
	{Name: "flame", Glyph: "🔥"},
	{Name: "book", Glyph: "📖"},
	{Name: "dumbbell", Glyph: "🏋"},
	{Name: "brain", Glyph: "🧠"},
	{Name: "smile", Glyph: "🙂"},
	{Name: "laptop", Glyph: "💻"},
	{Name: "activity", Glyph: "📈"},
	{Name: "target", Glyph: "🎯"},
	{Name: "volleyball", Glyph: "🏐"},
}

// Colors returns the palette in display order.
func Colors() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// Icons returns the icon catalogue in display order.
func Icons() []Icon {
	out := make([]Icon, len(icons))
	copy(out, icons)
	return out
}

// ColorNames returns the sorted palette names.
func ColorNames() []string {
	names := make([]string, len(palette))
	for i, c := range palette {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}

// IconNames returns the sorted icon names.
func IconNames() []string {
	names := make([]string, len(icons))
	for i, ic := range icons {
		names[i] = ic.Name
	}
	sort.Strings(names)
	return names
}

// IsColor reports whether name is in the palette.
func IsColor(name string) bool {
	_, ok := lookupColor(name)
	return ok
}

// IsIcon reports whether name is in the catalogue.
func IsIcon(name string) bool {
	_, ok := lookupIcon(name)
	return ok
}

// ColorFor returns the named colour, or the fallback colour.
func ColorFor(name string) Color {
	if c, ok := lookupColor(name); ok {
		return c
	}
	c, _ := lookupColor(FallbackColor)
	return c
}

// IconFor returns the named icon, or the flame.
func IconFor(name string) Icon {
	if ic, ok := lookupIcon(name); ok {
		return ic
	}
	ic, _ := lookupIcon(FallbackIcon)
	return ic
}

// Style returns a foreground style in the habit's colour.
func Style(name string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFor(name).Hex))
}

// Filled returns a background style in the habit's colour.
func Filled(name string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(ColorFor(name).Hex))
}

func lookupColor(name string) (Color, bool) {
	for _, c := range palette {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

func lookupIcon(name string) (Icon, bool) {
	for _, ic := range icons {
		if ic.Name == name {
			return ic, true
		}
	}
	return Icon{}, false
}
