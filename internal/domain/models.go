package domain

// Country represents a country as returned by the upstream countries query
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
