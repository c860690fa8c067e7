package env

import "strings"

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsDevelopment() bool { return e == Development }

// UnmarshalText accepts the short forms "dev" and "prod" as well.
func (e *Environment) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "dev", string(Development):
		*e = Development
	default:
		*e = Production
	}
	return nil
}
