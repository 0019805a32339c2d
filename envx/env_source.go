package envx

import (
	"os"
)

// EnvSource implements the Environment interface for the process environment.
type EnvSource struct{}

// Lookup retrieves an environment variable by name.
func (EnvSource) Lookup(key string) (string, bool, error) {
	val, found := os.LookupEnv(key)
	return val, found, nil
}

// Set writes an environment variable of the current process.
func (EnvSource) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Name returns the source name.
func (EnvSource) Name() string {
	return "Environment"
}
