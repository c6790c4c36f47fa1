package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"countryexplorer/internal/ui/logic"
)

// RenderPlain renders a display state for non-interactive output
func RenderPlain(display logic.DisplayState) string {
	switch display.Kind {
	case logic.DisplayLoading:
		return LoadingText
	case logic.DisplayErrored:
		return fmt.Sprintf("%s %s", ErrorPrefix, display.Message)
	case logic.DisplayResults:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Country Name", "Code")
		for _, c := range display.Countries {
			t.Row(c.Name, c.Code)
		}
		return t.Render()
	default:
		return display.Message
	}
}
