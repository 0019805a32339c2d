package envx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unattended-backpack/clay/envx"
)

func TestStandardResolverWithSingleSource(t *testing.T) {
	mapSource := envx.NewMapSource(map[string]string{
		"EXISTING_VAR": "test_value",
		"EMPTY_VAR":    "",
	}, "Test Source")

	resolver := envx.NewResolver(mapSource)

	result, err := resolver.Get("EXISTING_VAR")
	assert.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "test_value", result.Val)

	result, err = resolver.Get("NON_EXISTENT_VAR")
	assert.NoError(t, err)
	assert.False(t, result.Exist)
	assert.Equal(t, "NON_EXISTENT_VAR", result.Name)
	assert.Equal(t, "", result.Val)

	// empty but present
	result, err = resolver.Get("EMPTY_VAR")
	assert.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "", result.Val)
}

func TestStandardResolverWithMultipleSources(t *testing.T) {
	mapSource1 := envx.NewMapSource(map[string]string{
		"VAR1": "source1_value",
		"VAR3": "source1_value_for_var3",
	}, "Source 1")

	mapSource2 := envx.NewMapSource(map[string]string{
		"VAR2": "source2_value",
		"VAR3": "source2_value_for_var3", // shadowed by Source 1
	}, "Source 2")

	resolver := envx.NewResolver(mapSource1, mapSource2)

	result, err := resolver.Get("VAR1")
	assert.NoError(t, err)
	assert.Equal(t, "source1_value", result.Val)

	result, err = resolver.Get("VAR2")
	assert.NoError(t, err)
	assert.Equal(t, "source2_value", result.Val)

	result, err = resolver.Get("VAR3")
	assert.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "source1_value_for_var3", result.Val)
}

var errSimulated = errors.New("simulated error")

// ErrorSource always fails
type ErrorSource struct{}

func (ErrorSource) Lookup(key string) (string, bool, error) {
	return "", false, errSimulated
}

func (ErrorSource) Name() string {
	return "Error Source"
}

func TestStandardResolverWithErrorSourceAndBreakOnError(t *testing.T) {
	mapSource := envx.NewMapSource(map[string]string{
		"VAR1": "fallback_value",
	}, "Fallback Source")

	resolver := envx.NewResolver(ErrorSource{}, mapSource)

	result, err := resolver.Get("VAR1")
	assert.ErrorIs(t, err, errSimulated)
	assert.Equal(t, "Error Source: simulated error", err.Error())
	assert.Nil(t, result)
}

func TestStandardResolverWithErrorSourceAndContinueOnError(t *testing.T) {
	mapSource := envx.NewMapSource(map[string]string{
		"VAR1": "fallback_value",
	}, "Fallback Source")

	resolver := envx.NewResolver(ErrorSource{}, mapSource).WithErrorHandler(envx.ContinueOnError)

	result, err := resolver.Get("VAR1")
	assert.NoError(t, err)
	assert.True(t, result.Exist)
	assert.Equal(t, "fallback_value", result.Val)
}

func TestStandardResolverHandlerStopsWithoutError(t *testing.T) {
	stop := func(error, string) (bool, error) { return false, nil }
	resolver := envx.NewResolver(ErrorSource{}, envx.NewMapSource(map[string]string{"VAR1": "x"}, "")).WithErrorHandler(stop)

	result, err := resolver.Get("VAR1")
	assert.Same(t, errSimulated, err)
	assert.Nil(t, result)
}

func TestStandardResolverWithoutErrorHandler(t *testing.T) {
	resolver := envx.NewResolver(ErrorSource{}).WithErrorHandler(nil)

	result, err := resolver.Get("VAR1")
	assert.Same(t, errSimulated, err)
	assert.Nil(t, result)
}
