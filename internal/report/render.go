package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"propcheck/pkg/models"
)

const runReportTemplate = `{{ mark .Result }} {{ .Name }}: {{ .Result.Status }} ({{ .Result.Passes }} passed, {{ .Result.Discards }} discarded, seed {{ .Result.Seed }})
{{- if .Result.Counterexample }}
  counterexample: {{ .Result.Counterexample }}
  shrunk ({{ .Result.ShrinkSteps }} {{ "step" | pluralizeSteps .Result.ShrinkSteps }}): {{ .Result.Shrunk }}
{{- end }}
{{- if .Result.PanicValue }}
  panic: {{ .Result.PanicValue }}
{{- end }}
{{- if .Result.Err }}
{{ .Result.Err.Error | indent 2 }}
{{- end }}
`

const suiteReportTemplate = `Suite {{ .Suite }}: {{ len .Properties }} {{ "property" | pluralizeProps (len .Properties) }}
{{ range .Properties }}{{ runReport . }}{{ end -}}
{{ if .Failed }}
Failing: {{ .Failures | join ", " }}
To reproduce, rerun with the seed shown above.
{{- else }}
All properties passed.
{{- end }}
`

// Renderer renders run and suite results through text templates
type Renderer struct {
	run   *template.Template
	suite *template.Template
}

type runReportData struct {
	Name   string
	Result models.RunResult
}

// NewRenderer creates a renderer with all report templates parsed
func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	run, err := template.New("run").Funcs(r.funcMap()).Parse(runReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run report template: %w", err)
	}
	r.run = run

	suite, err := template.New("suite").Funcs(r.funcMap()).Parse(suiteReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suite report template: %w", err)
	}
	r.suite = suite

	return r, nil
}

// funcMap merges sprig helpers with the report-specific ones
func (r *Renderer) funcMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()

	customFuncs := template.FuncMap{
		"mark":           markFunc,
		"pluralizeSteps": pluralizeFunc,
		"pluralizeProps": propertyWordFunc,
		"runReport": func(p models.PropertyResult) (string, error) {
			return r.RenderRun(p.Name, p.Result)
		},
	}

	for name, fn := range customFuncs {
		funcMap[name] = fn
	}

	return funcMap
}

// RenderRun renders the report for a single property run
func (r *Renderer) RenderRun(name string, result models.RunResult) (string, error) {
	var buf strings.Builder
	if err := r.run.Execute(&buf, runReportData{Name: name, Result: result}); err != nil {
		return "", fmt.Errorf("failed to render run report: %w", err)
	}
	return buf.String(), nil
}

// RenderSuite renders the report for a whole suite run
func (r *Renderer) RenderSuite(result models.SuiteResult) (string, error) {
	var buf strings.Builder
	if err := r.suite.Execute(&buf, &result); err != nil {
		return "", fmt.Errorf("failed to render suite report: %w", err)
	}
	return buf.String(), nil
}

// markFunc returns the leading status symbol for a run line
func markFunc(result models.RunResult) string {
	if result.Failed() {
		return "!"
	}
	return "+"
}

// pluralizeFunc appends an s unless the count is one
func pluralizeFunc(count int, word string) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// propertyWordFunc handles the property/properties irregular plural
func propertyWordFunc(count int, word string) string {
	if count == 1 {
		return word
	}
	return strings.TrimSuffix(word, "y") + "ies"
}
