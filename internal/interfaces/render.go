package interfaces

import "propcheck/pkg/models"

// Renderer turns run results into report text for the output layer
type Renderer interface {
	// RenderRun renders the report for a single property run
	RenderRun(name string, result models.RunResult) (string, error)

	// RenderSuite renders the report for a whole suite run
	RenderSuite(result models.SuiteResult) (string, error)
}
