package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"propcheck/internal/app"
	"propcheck/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "propcheck [suite]",
	Short: "A property-based testing runner",
	Long: `Propcheck runs property-based test suites: it generates random inputs for
each property, evaluates the predicate over many trials, and on failure shrinks
the counterexample to a minimal one.

The suite to run can be provided as an argument or chosen interactively. With
no argument in non-interactive mode, every bundled suite is run. Supplying
--seed reproduces an earlier run exactly, including its failure and shrink
trajectory.

Interactive mode can be controlled via config (interactive_default), overridden
with -i (force interactive) or -y (force non-interactive).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check if version flag is set
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		request, err := buildRequestFromFlags(cmd, args)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Run(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("propcheck version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled property suites",
	Long:  "List every bundled suite and the properties it defines, in the order they run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		request := models.NewRunRequest()

		// Get config path from flag
		if configPath, err := cmd.Flags().GetString("config"); err == nil {
			request.ConfigPath = configPath
		}

		return app.ListSuites(request)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default ~/.config/propcheck/config.toml)")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "noninteractive mode - use defaults without prompts")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "force interactive mode (overrides config default)")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "print version information")

	// Main command flags
	rootCmd.Flags().Int64P("seed", "s", 0, "random seed for reproducible runs")
	rootCmd.Flags().IntP("trials", "n", 0, "number of passing trials required per property")
	rootCmd.Flags().Int("max-size", 0, "upper bound for the generation size parameter")
	rootCmd.Flags().String("size-policy", "", "size schedule across trials (linear, fixed)")
	rootCmd.Flags().StringP("target", "t", "", "report target (stdout, clipboard, file:/path)")
	rootCmd.Flags().Bool("verbose", false, "log every shrink step and stream progress marks")
}

// buildRequestFromFlags constructs a RunRequest from command flags and arguments
func buildRequestFromFlags(cmd *cobra.Command, args []string) (*models.RunRequest, error) {
	request := models.NewRunRequest()

	// Get suite name from positional argument
	if len(args) > 0 {
		request.Suite = args[0]
	}

	// Extract flags
	var err error

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	// Handle interactive mode flags
	if request.ForceNonInteractive, err = cmd.Flags().GetBool("yes"); err != nil {
		return nil, fmt.Errorf("invalid yes flag: %w", err)
	}

	if request.ForceInteractive, err = cmd.Flags().GetBool("interactive"); err != nil {
		return nil, fmt.Errorf("invalid interactive flag: %w", err)
	}

	// Validate that both flags are not set
	if request.ForceInteractive && request.ForceNonInteractive {
		return nil, fmt.Errorf("cannot use both --interactive and --yes flags")
	}

	if request.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
		return nil, fmt.Errorf("invalid seed flag: %w", err)
	}
	// Track if --seed was explicitly set; seed 0 means "pick one"
	request.SeedSet = cmd.Flags().Changed("seed")

	if request.Trials, err = cmd.Flags().GetInt("trials"); err != nil {
		return nil, fmt.Errorf("invalid trials flag: %w", err)
	}

	if request.MaxSize, err = cmd.Flags().GetInt("max-size"); err != nil {
		return nil, fmt.Errorf("invalid max-size flag: %w", err)
	}

	if request.SizePolicy, err = cmd.Flags().GetString("size-policy"); err != nil {
		return nil, fmt.Errorf("invalid size-policy flag: %w", err)
	}

	if request.Target, err = cmd.Flags().GetString("target"); err != nil {
		return nil, fmt.Errorf("invalid target flag: %w", err)
	}

	if request.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, app.ErrPropertiesFailed) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
