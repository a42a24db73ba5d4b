package runner

import (
	"reflect"
	"strings"

	"propcheck/pkg/gen"
	"propcheck/pkg/models"
	"propcheck/pkg/prop"
)

// propPrefix is the naming convention for property discovery: exported
// methods whose name starts with it and whose type is func() *prop.Property
// are treated as properties of the suite.
const propPrefix = "Prop"

// RunSuite discovers and runs every property defined on the suite value.
// Methods are enumerated in sorted name order, which makes the result order
// stable, and every property runs to completion regardless of earlier
// failures. Each property starts from the same effective seed, resolved
// once per suite run, so any single failure can be reproduced on its own.
func (r *Runner) RunSuite(name string, suite interface{}) models.SuiteResult {
	result := models.SuiteResult{Suite: name}

	seed := r.cfg.Seed
	if seed == 0 {
		seed = gen.NewSource(0).Seed()
	}

	v := reflect.ValueOf(suite)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if !strings.HasPrefix(method.Name, propPrefix) {
			continue
		}
		build, ok := v.Method(i).Interface().(func() *prop.Property)
		if !ok {
			continue
		}
		result.Properties = append(result.Properties, models.PropertyResult{
			Name:   method.Name,
			Result: r.runProperty(build(), gen.NewSource(seed)),
		})
	}
	return result
}

// RunModule runs a suite and returns only the names of its failing
// properties, in stable enumeration order
func (r *Runner) RunModule(name string, suite interface{}) []string {
	result := r.RunSuite(name, suite)
	return result.Failures()
}

// RunModule runs a suite with the default configuration and returns the
// failing property names
func RunModule(name string, suite interface{}) []string {
	return New(DefaultConfig()).RunModule(name, suite)
}

// SuiteProperties returns the property names a suite value defines, in the
// same stable order RunSuite uses
func SuiteProperties(suite interface{}) []string {
	var names []string
	v := reflect.ValueOf(suite)
	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if !strings.HasPrefix(method.Name, propPrefix) {
			continue
		}
		if _, ok := v.Method(i).Interface().(func() *prop.Property); !ok {
			continue
		}
		names = append(names, method.Name)
	}
	return names
}
