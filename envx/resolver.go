package envx

import "fmt"

// Resolver looks up variables by name.
type Resolver interface {
	Get(name string) (*Variable, error)
}

// ErrorHandler decides whether resolution continues after a source failed.
// Returning false stops resolution with the returned error, or with the source error when it is nil.
type ErrorHandler func(err error, sourceName string) (bool, error)

// ContinueOnError ignores source errors and moves on to the next source
func ContinueOnError(err error, sourceName string) (bool, error) {
	return true, nil
}

// BreakOnError stops resolution on the first source error, prefixing it with the source name
func BreakOnError(err error, sourceName string) (bool, error) {
	return false, fmt.Errorf("%s: %w", sourceName, err)
}

// StandardResolver queries its sources in order and returns the first hit.
type StandardResolver struct {
	sources      []Source
	errorHandler ErrorHandler
}

// NewResolver creates a new StandardResolver with the given sources, highest priority first.
// By default, uses BreakOnError as the error handler.
func NewResolver(sources ...Source) *StandardResolver {
	return &StandardResolver{
		sources:      sources,
		errorHandler: BreakOnError,
	}
}

// WithErrorHandler sets a custom error handler and returns the resolver for chaining.
func (r *StandardResolver) WithErrorHandler(handler ErrorHandler) *StandardResolver {
	r.errorHandler = handler
	return r
}

// Get returns the first value found or a Variable with Exist set to false if no source has it.
func (r *StandardResolver) Get(name string) (*Variable, error) {
	for _, src := range r.sources {
		val, exist, err := src.Lookup(name)
		switch {
		case err != nil:
			if err = r.handle(err, src); err != nil {
				return nil, err
			}
		case exist:
			return &Variable{Name: name, Val: val, Exist: true}, nil
		}
	}

	return &Variable{Name: name}, nil
}

// handle returns nil when resolution may go on with the next source.
func (r *StandardResolver) handle(err error, src Source) error {
	if r.errorHandler == nil {
		return err
	}
	next, handlerErr := r.errorHandler(err, src.Name())
	switch {
	case next:
		return nil
	case handlerErr != nil:
		return handlerErr
	default:
		return err
	}
}
