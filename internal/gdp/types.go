package gdp

// Value is a GDP figure that may be absent in the source data. An empty cell
// in the source CSV produces a Value with Valid == false, which is distinct
// from a real zero.
type Value struct {
	Float64 float64
	Valid   bool
}

// NewValue returns a present Value.
func NewValue(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Missing is the absent-value sentinel.
var Missing = Value{}

// Ptr returns the value as a nullable float for the API boundary: nil when
// the value is the missing sentinel.
func (v Value) Ptr() *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// Observation is one row of the tidy table: a single (country, year) GDP
// reading.
type Observation struct {
	CountryCode string
	Year        int
	GDP         Value
}

// Selection holds the filter state the presentation layer sends on every
// interaction. It is transient and never persisted.
type Selection struct {
	YearFrom     int
	YearTo       int
	CountryCodes []string
}

// GrowthMetric describes GDP growth for one country between two boundary
// years. Ratio is the absent sentinel when the start value is missing in the
// source data.
type GrowthMetric struct {
	CountryCode   string
	YearFrom      int
	YearTo        int
	GDPAtYearFrom Value
	GDPAtYearTo   Value
	Ratio         Value
}
