package logic

import (
	"fmt"

	"countryexplorer/internal/domain"
)

// DisplayKind identifies which of the mutually exclusive display states applies
type DisplayKind int

const (
	DisplayLoading DisplayKind = iota
	DisplayErrored
	DisplayResults
	DisplayEmpty
)

// EmptyPrompt is shown when there is no data and no filter
const EmptyPrompt = "Enter a code to see countries."

func (k DisplayKind) String() string {
	switch k {
	case DisplayLoading:
		return "loading"
	case DisplayErrored:
		return "errored"
	case DisplayResults:
		return "results"
	case DisplayEmpty:
		return "empty"
	default:
		return fmt.Sprintf("DisplayKind(%d)", int(k))
	}
}

// DisplayState is derived on every render and never stored
type DisplayState struct {
	Kind      DisplayKind
	Message   string           // error text for Errored, explanation for Empty
	Countries []domain.Country // rows for Results
}

// SelectDisplayState picks the single state to show. Precedence is loading,
// then error, then results, then empty.
func SelectDisplayState(loading bool, err error, filterQuery string, filtered []domain.Country) DisplayState {
	switch {
	case loading:
		return DisplayState{Kind: DisplayLoading}
	case err != nil:
		return DisplayState{Kind: DisplayErrored, Message: err.Error()}
	case len(filtered) > 0:
		return DisplayState{Kind: DisplayResults, Countries: filtered}
	default:
		return DisplayState{Kind: DisplayEmpty, Message: EmptyMessage(filterQuery)}
	}
}

// EmptyMessage explains an empty table
func EmptyMessage(filterQuery string) string {
	if filterQuery != "" {
		return fmt.Sprintf("No countries found matching \"%s\".", filterQuery)
	}
	return EmptyPrompt
}
