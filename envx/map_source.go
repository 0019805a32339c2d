package envx

// MapSource implements Environment for a map[string]string.
// Useful for testing or in-memory configuration.
type MapSource struct {
	// Name identifies this source for logging/debugging
	SourceName string
	// Data holds the key-value pairs
	Data map[string]string
}

// NewMapSource creates a new MapSource with an optional name.
func NewMapSource(data map[string]string, name string) *MapSource {
	if name == "" {
		name = "Map"
	}
	if data == nil {
		data = make(map[string]string)
	}
	return &MapSource{
		SourceName: name,
		Data:       data,
	}
}

// Lookup retrieves a value from the map.
func (s *MapSource) Lookup(key string) (string, bool, error) {
	val, found := s.Data[key]
	return val, found, nil
}

// Set stores a value in the map.
func (s *MapSource) Set(key, value string) error {
	s.Data[key] = value
	return nil
}

// Name returns the source name for logging purposes.
func (s *MapSource) Name() string {
	return s.SourceName
}
