// Package style provides the colors and icons shared by the logger and the
// command output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

// Label renders a field name for aligned key/value output.
func Label(name string) string {
	return lipgloss.NewStyle().Foreground(Slate).Width(labelWidth).Render(name)
}

const labelWidth = 12
