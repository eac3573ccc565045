package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ShiftStyle colors T1 blue and T2 yellow.
func ShiftStyle(s domain.Shift) lipgloss.Style {
	switch s {
	case domain.ShiftT1:
		return StyleBlue
	case domain.ShiftT2:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ShiftBadge renders "● T1" in the shift's color.
func ShiftBadge(s domain.Shift) string {
	if !s.Valid() {
		return StyleDim.Render("● ?")
	}
	return ShiftStyle(s).Render("● " + string(s))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success and Failure render one-line outcome messages.
func Success(text string) string {
	return StyleGreen.Render("✓ " + text)
}

func Failure(text string) string {
	return StyleRed.Render("✗ " + text)
}
