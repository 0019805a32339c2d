package envx

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// Export copies every key of src into env. Keys already present in env are left untouched.
// It returns the names which were actually written, sorted.
func Export(src *EnvFileSource, env Environment) ([]string, error) {
	var written []string
	for _, key := range src.Keys() {
		_, exist, err := env.Lookup(key)
		if err != nil {
			return written, Error{VarName: key, Reason: "cannot be looked up in " + env.Name(), Cause: err}
		}
		if exist {
			continue
		}
		val, _, _ := src.Lookup(key)
		if err = env.Set(key, val); err != nil {
			return written, Error{VarName: key, Reason: "cannot be set in " + env.Name(), Cause: err}
		}
		written = append(written, key)
	}
	return written, nil
}

// LoadFile exports the definitions file at path into env without overriding variables which are
// already set. Loading is best effort: when the file is malformed, the entries above the offending
// line are still exported and the parse error is returned along with the written names.
func LoadFile(fs afero.Fs, path string, env Environment) ([]string, error) {
	src, readErr := readEnvFile(fs, path)
	if src == nil {
		return nil, fmt.Errorf("failed to load env file: %w", readErr)
	}
	written, err := Export(src, env)
	return written, errors.Join(readErr, err)
}
