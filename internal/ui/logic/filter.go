package logic

import (
	"strings"

	"countryexplorer/internal/domain"
)

// MatchesFilter checks if a country code contains the filter query, ignoring case
func MatchesFilter(country domain.Country, filterQuery string) bool {
	if filterQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(country.Code), strings.ToLower(filterQuery))
}

// FilterCountries returns the countries whose code matches the filter, in their
// original order. An empty filter returns the list unchanged.
func FilterCountries(countries []domain.Country, filterQuery string) []domain.Country {
	if filterQuery == "" {
		return countries
	}

	filtered := make([]domain.Country, 0, len(countries))
	for _, country := range countries {
		if MatchesFilter(country, filterQuery) {
			filtered = append(filtered, country)
		}
	}
	return filtered
}

// ClearVisible reports whether the clear-filter control should be offered
func ClearVisible(filterQuery string) bool {
	return filterQuery != ""
}
