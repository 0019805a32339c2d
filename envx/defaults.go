package envx

// DefaultResolver is the global resolver used by the package functions.
// It contains only an EnvSource and skips source errors.
var DefaultResolver Resolver = NewResolver(EnvSource{}).WithErrorHandler(ContinueOnError)

// Get looks up a variable by name from the DefaultResolver.
// Errors from the resolver are ignored.
func Get(name string) *Variable {
	v, err := DefaultResolver.Get(name)
	if err != nil {
		return &Variable{Name: name}
	}
	return v
}
