package models

// CountryReference identifies one country of the dataset by its World Bank code.
type CountryReference struct {
	Code string `json:"code"`
}

// NewCountryReference creates a new CountryReference instance with the provided code
func NewCountryReference(code string) CountryReference {
	return CountryReference{Code: code}
}
