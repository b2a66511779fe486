// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import "github.com/charmbracelet/lipgloss"

// Table palette.
var (
	HeaderColor  = lipgloss.Color("#cba6f7")
	BorderColor  = lipgloss.Color("#6c7086")
	OddRowColor  = lipgloss.Color("#cdd6f4")
	EvenRowColor = lipgloss.Color("#a6adc8")
)
