package gdp

// Default year coverage of the World Bank GDP dataset.
const (
	DefaultMinYear = 1960
	DefaultMaxYear = 2022
)

type Config struct {
	DataPath string
	MinYear  int
	MaxYear  int
	Verbose  bool
}

// NewConfig builds a Config for the given CSV source (local path or URL) with
// the default year coverage.
func NewConfig(dataPath string, verbose bool) Config {
	return Config{
		DataPath: dataPath,
		MinYear:  DefaultMinYear,
		MaxYear:  DefaultMaxYear,
		Verbose:  verbose,
	}
}
