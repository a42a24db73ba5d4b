package app

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"propcheck/internal/config"
	"propcheck/internal/demo"
	"propcheck/internal/interactive"
	"propcheck/internal/interfaces"
	"propcheck/internal/report"
	"propcheck/pkg/models"
	"propcheck/pkg/runner"
)

// ErrPropertiesFailed signals that the run completed but found failures
var ErrPropertiesFailed = errors.New("one or more properties failed")

// Run executes the main application logic
func Run(request *models.RunRequest) error {
	cfg, err := loadConfiguration(request)
	if err != nil {
		return err
	}

	resolveInteractiveMode(request, cfg)

	names, err := selectSuites(request)
	if err != nil {
		return fmt.Errorf("failed to select suite: %w", err)
	}

	reporter := report.NewConsoleReporter(os.Stdout, cfg.Verbose)
	run := runner.New(runnerConfig(cfg, reporter))

	renderer, err := report.NewRenderer()
	if err != nil {
		return fmt.Errorf("report setup failed: %w", err)
	}
	output := report.NewOutputHandler()

	suites := demo.Suites()
	failed := false
	for _, name := range names {
		result := run.RunSuite(name, suites[name])
		reporter.Finish()

		text, err := renderer.RenderSuite(result)
		if err != nil {
			return fmt.Errorf("failed to render report for suite %s: %w", name, err)
		}
		if err := writeReport(output, cfg.Target, text); err != nil {
			return fmt.Errorf("output failed: %w", err)
		}
		if result.Failed() {
			failed = true
		}
	}

	if failed {
		return ErrPropertiesFailed
	}
	return nil
}

// loadConfiguration loads the config file and applies flag precedence
func loadConfiguration(request *models.RunRequest) (*interfaces.Config, error) {
	manager := config.NewManager()

	if _, err := manager.Load(request.ConfigPath); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if request.Trials > 0 {
		manager.SetFlag("trials", request.Trials)
	}
	if request.MaxSize > 0 {
		manager.SetFlag("max_size", request.MaxSize)
	}
	if request.SizePolicy != "" {
		manager.SetFlag("size_policy", request.SizePolicy)
	}
	if request.SeedSet {
		manager.SetFlag("seed", request.Seed)
	}
	if request.Target != "" {
		manager.SetFlag("target", request.Target)
	}
	if request.Verbose {
		manager.SetFlag("verbose", true)
	}

	cfg, err := manager.Resolve()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	if err := manager.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveInteractiveMode determines the final interactive mode based on flags and config
func resolveInteractiveMode(request *models.RunRequest, cfg *interfaces.Config) {
	// Priority: explicit flags > config default
	if request.ForceInteractive {
		request.Interactive = true
	} else if request.ForceNonInteractive {
		request.Interactive = false
	} else {
		request.Interactive = cfg.InteractiveDefault
	}
}

// selectSuites resolves which suites to run: the named one, an interactive
// choice, or all of them
func selectSuites(request *models.RunRequest) ([]string, error) {
	available := demo.SuiteNames()

	if request.Suite != "" {
		if _, ok := demo.Suites()[request.Suite]; !ok {
			return nil, fmt.Errorf("unknown suite %q; available: %s",
				request.Suite, strings.Join(available, ", "))
		}
		return []string{request.Suite}, nil
	}

	if request.Interactive {
		picker := interactive.NewPicker()
		choice, err := picker.PickSuite(available)
		if err != nil {
			return nil, err
		}
		return []string{choice}, nil
	}

	return available, nil
}

// runnerConfig maps the application configuration onto the engine's
func runnerConfig(cfg *interfaces.Config, reporter runner.Reporter) runner.Config {
	policy := runner.SizeLinear
	if cfg.SizePolicy == "fixed" {
		policy = runner.SizeFixed
	}
	return runner.Config{
		Trials:          cfg.Trials,
		MaxDiscardRatio: cfg.MaxDiscardRatio,
		MaxSize:         cfg.MaxSize,
		SizePolicy:      policy,
		Seed:            cfg.Seed,
		Reporter:        reporter,
	}
}

// writeReport dispatches rendered report text to the configured target
func writeReport(output interfaces.OutputHandler, target, content string) error {
	switch {
	case target == "clipboard":
		return output.WriteToClipboard(content)
	case strings.HasPrefix(target, "file:"):
		return output.WriteToFile(content, strings.TrimPrefix(target, "file:"))
	default:
		return output.WriteToStdout(content)
	}
}

// ListSuites lists the bundled suites and their properties
func ListSuites(request *models.RunRequest) error {
	suites := demo.Suites()

	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s:\n", name)
		for _, propName := range runner.SuiteProperties(suites[name]) {
			fmt.Printf("  - %s\n", propName)
		}
	}
	return nil
}
