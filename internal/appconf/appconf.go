package appconf

import "strings"

// Environment is the operating environment the server was launched in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the -env flag value to an Environment, defaulting
// to Development for anything unrecognized.
func EnvFlagToEnvironment(flag string) Environment {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// Config holds all the configuration settings for the server: the network
// port to listen on, the operating environment, the accepted API keys, and
// the per-key rate limit (requests per second, 0 disables limiting).
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	Verbose   bool
}
