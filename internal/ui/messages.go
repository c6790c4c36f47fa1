package ui

import (
	"countryexplorer/internal/domain"
)

// countriesLoadedMsg carries the outcome of the countries query
type countriesLoadedMsg struct {
	countries []domain.Country
	err       error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
