// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#B83B5E"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	barBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Base styles
var (
	// Title is the style for the app header
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Todo row styles. Rows are always a single line so mouse rows line up
// with the layout.
var (
	// TodoItem is the base style for a todo row
	TodoItem = lipgloss.NewStyle()

	// TodoSelected is the style for the row under the cursor
	TodoSelected = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// TodoCompleted is the style for completed titles
	TodoCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TodoPending greys out rows with a request in flight
	TodoPending = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true)

	// Placeholder is the row shown while a new todo is being saved
	Placeholder = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	// Cursor marks the selected row
	Cursor = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)
)

// Checkbox styles
var (
	CheckboxDone = lipgloss.NewStyle().
			Foreground(SuccessColor)

	CheckboxOpen = lipgloss.NewStyle().
			Foreground(Subtle)
)

// StatusBar styles
var (
	// StatusBar is the base style for the footer
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(barBackground).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(barBackground)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(barBackground)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(barBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(barBackground).
				Bold(true)
)

// Banner is the transient error line.
var Banner = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.AdaptiveColor{Light: "#D0473D", Dark: "#A8322A"}).
	Padding(0, 1)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the new todo field without focus
	Input = lipgloss.NewStyle().
		Foreground(Subtle)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			Underline(true)

	// ToggleAll is the marker in front of the new todo field
	ToggleAll = lipgloss.NewStyle().
			Foreground(Subtle)

	// ToggleAllActive is used when every todo is completed
	ToggleAllActive = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)
)

// Dialog is the base style for dialog boxes
var Dialog = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Highlight).
	Padding(1, 2)

// Spinner style
var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)

// SectionHeader is used for help sections.
var SectionHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(Subtle).
	Underline(true)

// Filter tab styles
var (
	// Tab is for inactive filters
	Tab = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Subtle).
		Background(barBackground)

	// TabActive is for the current filter
	TabActive = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)
