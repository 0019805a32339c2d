package envx

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// DefaultEnvFile is the name of the definitions file searched for by FindEnvFile.
const DefaultEnvFile = ".env"

// EnvFileSource implements Source interface to load environment variables from .env files.
type EnvFileSource struct {
	filePath string
	values   map[string]string
}

// NewEnvFileSourceFs reads and parses the .env file from fs. A missing or malformed file is an error.
func NewEnvFileSourceFs(fs afero.Fs, filePath string) (*EnvFileSource, error) {
	source, err := readEnvFile(fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return source, nil
}

// Lookup retrieves a value by name from the loaded .env file.
func (s *EnvFileSource) Lookup(name string) (string, bool, error) {
	value, found := s.values[name]
	return value, found, nil
}

// Name returns the name of this source including the file path.
func (s *EnvFileSource) Name() string {
	return fmt.Sprintf("env-file[%s]", s.filePath)
}

// Keys returns the names defined in the file, sorted.
func (s *EnvFileSource) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// readEnvFile returns a nil source only when the file cannot be read. On a parse error the
// returned source holds the entries above the first offending line.
func readEnvFile(fs afero.Fs, filePath string) (*EnvFileSource, error) {
	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return nil, err
	}

	source := &EnvFileSource{filePath: filePath}
	source.values, err = godotenv.UnmarshalBytes(data)
	if err == nil {
		return source, nil
	}
	err = fmt.Errorf("cannot parse %s: %w", filePath, err)

	lines := bytes.SplitAfter(data, []byte("\n"))
	for i := len(lines) - 1; i > 0; i-- {
		values, prefixErr := godotenv.UnmarshalBytes(bytes.Join(lines[:i], nil))
		if prefixErr == nil {
			source.values = values
			return source, err
		}
	}
	source.values = make(map[string]string)
	return source, err
}

// FindEnvFile looks for DefaultEnvFile in dir and then in each of its parents,
// returning the path of the first regular file found.
func FindEnvFile(fs afero.Fs, dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultEnvFile)
		if info, err := fs.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in %s or its parents: %w", DefaultEnvFile, dir, os.ErrNotExist)
		}
		dir = parent
	}
}
