package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countryexplorer/internal/ui/logic"
)

const (
	// Title is shown at the top of the screen
	Title = "Country Explorer"

	// FilterPlaceholder is shown in the empty filter input
	FilterPlaceholder = "Filter by Country Code (e.g., US, CA)"

	// FilterHint sits under the filter input
	FilterHint = "Enter a country code like US, CA, or BR to filter the list below."

	// LoadingText is shown while the countries query is in flight
	LoadingText = "Loading countries..."

	// ErrorPrefix precedes the failure message
	ErrorPrefix = "Error loading data:"

	// ClearLabel names the clear-filter control
	ClearLabel = "Clear filter"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	FilterInput  string // rendered filter text input
	ClearVisible bool
	Display      logic.DisplayState
	Table        string // rendered table, only used for DisplayResults
	Spinner      string // rendered spinner frame, only used for DisplayLoading
	Total        int    // countries returned by the query
	ShowHelp     bool
	HelpView     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(Title))
	content.WriteString("\n")

	// Filter input with the clear control beside it
	filterLine := state.FilterInput
	if state.ClearVisible {
		filterLine = fmt.Sprintf("%s  %s", filterLine, r.styles.Clear.Render(fmt.Sprintf("[x] %s (esc)", ClearLabel)))
	}
	content.WriteString(filterLine)
	content.WriteString("\n")
	content.WriteString(r.styles.Hint.Render(FilterHint))
	content.WriteString("\n\n")

	content.WriteString(r.styles.Card.Render(r.renderBody(state)))

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(status))
	}

	if state.ShowHelp && state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

// renderBody renders exactly one of the four display states
func (r *Renderer) renderBody(state ViewState) string {
	switch state.Display.Kind {
	case logic.DisplayLoading:
		return r.styles.Message.Render(fmt.Sprintf("%s %s", r.styles.Spinner.Render(state.Spinner), LoadingText))
	case logic.DisplayErrored:
		return r.styles.StatusError.Render(fmt.Sprintf("%s\n%s", ErrorPrefix, state.Display.Message))
	case logic.DisplayResults:
		return state.Table
	default:
		return r.styles.Message.Render(state.Display.Message)
	}
}

func (r *Renderer) renderStatus(state ViewState) string {
	switch state.Display.Kind {
	case logic.DisplayResults:
		if len(state.Display.Countries) == state.Total {
			return fmt.Sprintf("%d countries", state.Total)
		}
		return fmt.Sprintf("Showing %d of %d countries", len(state.Display.Countries), state.Total)
	case logic.DisplayEmpty:
		if state.Total > 0 {
			return fmt.Sprintf("Showing 0 of %d countries", state.Total)
		}
	}
	return ""
}

// TableHeight returns the table height, header included, left once the surrounding chrome is drawn
func TableHeight(height int, showHelp bool) int {
	// padding(2) + title(2) + input(1) + hint(1) + gap(1) + card border(2) + status(2)
	chrome := 11
	if showHelp {
		chrome++
	}
	rows := height - chrome
	if rows < 5 {
		rows = 5
	}
	return rows
}

// NameColumnWidth returns the width of the country name column for a terminal width
func NameColumnWidth(width int) int {
	w := width - CodeColumnWidth - lipgloss.Width("  ")*2 - 10
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

// CodeColumnWidth is the width of the code column
const CodeColumnWidth = 6
