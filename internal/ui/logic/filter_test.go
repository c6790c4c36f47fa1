package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countryexplorer/internal/domain"
)

var sampleCountries = []domain.Country{
	{Code: "US", Name: "United States"},
	{Code: "CA", Name: "Canada"},
	{Code: "BR", Name: "Brazil"},
	{Code: "MX", Name: "Mexico"},
}

func names(countries []domain.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}

func TestFilterCountries(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "empty filter returns all", filter: "", want: []string{"United States", "Canada", "Brazil", "Mexico"}},
		{name: "exact code", filter: "BR", want: []string{"Brazil"}},
		{name: "lower case", filter: "br", want: []string{"Brazil"}},
		{name: "mixed case", filter: "mX", want: []string{"Mexico"}},
		{name: "single letter keeps order", filter: "a", want: []string{"Canada"}},
		{name: "shared letter", filter: "s", want: []string{"United States"}},
		{name: "no match", filter: "XYZ", want: []string{}},
		{name: "name is not matched", filter: "Bra", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCountries(sampleCountries, tt.filter)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterCountriesMatchesDefinition(t *testing.T) {
	countries := []domain.Country{
		{Code: "AD", Name: "Andorra"},
		{Code: "AE", Name: "United Arab Emirates"},
		{Code: "DE", Name: "Germany"},
		{Code: "ES", Name: "Spain"},
		{Code: "EE", Name: "Estonia"},
	}

	for _, f := range []string{"", "a", "A", "e", "E", "de", "EE", "z", "aee"} {
		var want []domain.Country
		for _, c := range countries {
			if strings.Contains(strings.ToLower(c.Code), strings.ToLower(f)) {
				want = append(want, c)
			}
		}
		got := FilterCountries(countries, f)
		assert.ElementsMatch(t, want, got, "filter %q", f)
		assert.Equal(t, len(want), len(got), "filter %q", f)
		for i := range want {
			assert.Equal(t, want[i], got[i], "filter %q keeps order", f)
		}
	}
}

func TestFilterCountriesIdempotent(t *testing.T) {
	for _, f := range []string{"", "a", "BR", "xyz", "u"} {
		once := FilterCountries(sampleCountries, f)
		twice := FilterCountries(once, f)
		assert.Equal(t, once, twice, "filter %q", f)
	}
}

func TestFilterCountriesNilInput(t *testing.T) {
	assert.Empty(t, FilterCountries(nil, ""))
	assert.Empty(t, FilterCountries(nil, "US"))
}

func TestFilterCountriesDoesNotMutateInput(t *testing.T) {
	input := append([]domain.Country(nil), sampleCountries...)
	_ = FilterCountries(input, "BR")
	require.Equal(t, sampleCountries, input)
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter(domain.Country{Code: "US"}, ""))
	assert.True(t, MatchesFilter(domain.Country{Code: "US"}, "u"))
	assert.False(t, MatchesFilter(domain.Country{Code: "US", Name: "United States"}, "united"))
}

func TestFilterCountriesAgreesWithMatchesFilter(t *testing.T) {
	countries := []domain.Country{
		{Code: "US", Name: "United States"},
		{Code: "CA", Name: "Canada"},
		{Code: "BR", Name: "Brazil"},
		{Code: "MX", Name: "Mexico"},
	}

	for _, filter := range []string{"", "u", "R", "x", "zz"} {
		var want []domain.Country
		for _, c := range countries {
			if MatchesFilter(c, filter) {
				want = append(want, c)
			}
		}
		assert.ElementsMatch(t, want, FilterCountries(countries, filter), "filter %q", filter)
	}
}

func TestClearVisible(t *testing.T) {
	assert.False(t, ClearVisible(""))
	assert.True(t, ClearVisible("C"))
	assert.True(t, ClearVisible(" "))
}
