package models

// ReferencesModel References model for related data
type ReferencesModel struct {
	Countries []CountryReference `json:"countries"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Countries: []CountryReference{},
	}
}

// NewCountryReferences creates a References model carrying the given country codes.
func NewCountryReferences(codes []string) ReferencesModel {
	countries := make([]CountryReference, 0, len(codes))
	for _, code := range codes {
		countries = append(countries, NewCountryReference(code))
	}
	return ReferencesModel{Countries: countries}
}
