package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"runctl/internal/config"
	"runctl/internal/registry"
	_ "runctl/internal/selftest" // registers the built-in suites
	"runctl/pkg/harness"
	"runctl/pkg/logging"
)

var (
	runSeed       string
	runExecKey    uint64
	runFilter     string
	runIterations int
	runTimeout    time.Duration
	runReportDir  string
	runNoColor    bool
	runDebug      bool
)

// completeFilterFlag provides shell completion for the filter flag from the
// registered suite and case names.
func completeFilterFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, suite := range registry.Suites() {
		names = append(names, suite.Name)
		for _, tc := range suite.Cases {
			names = append(names, tc.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the registered test suites",
		Long: `Executes every enabled case of every registered suite, optionally
repeated across iterations with reproducible pseudo-random seeding.

Each (suite, case, iteration) execution derives a 64-bit execution key from
the run seed, so a recorded failure replays exactly:

  runctl run                                  # fresh seed, all suites
  runctl run --iterations=5                   # repeat every case 5 times
  runctl run --filter=fuzzer                  # only the 'fuzzer' suite
  runctl run --filter=fuzzer_ranges           # only that case, forced on
  runctl run --seed=5S8LXWC2P1R0T9QD --filter=fuzzer_ranges
  runctl run --exec-key=1234567890 --filter=fuzzer_ranges

A filter matching a case name forces the case to run even when it is
disabled. Exit codes: 0 all passed, 1 failures, 2 setup failure or filter
miss, 3 case timeout.`,
		RunE: runRun,
	}

	cmd.Flags().StringVar(&runSeed, "seed", "", "Run seed; a fresh one is generated when empty")
	cmd.Flags().Uint64Var(&runExecKey, "exec-key", 0, "Fixed execution key used verbatim for every iteration")
	cmd.Flags().StringVar(&runFilter, "filter", "", "Run only the suite or case with this name (case-insensitive)")
	cmd.Flags().IntVar(&runIterations, "iterations", 1, "Number of iterations per case (minimum 1)")
	cmd.Flags().DurationVar(&runTimeout, "timeout", harness.DefaultCaseTimeout*time.Second, "Per-case execution ceiling")
	cmd.Flags().StringVar(&runReportDir, "report", "", "Directory to save a JSON run report (default: none)")
	cmd.Flags().BoolVar(&runNoColor, "no-color", false, "Disable ANSI styling of the run output")
	cmd.Flags().BoolVar(&runDebug, "debug", false, "Enable debug logging")

	_ = cmd.RegisterFlagCompletionFunc("filter", completeFilterFlag)

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if runTimeout < time.Second {
			return fmt.Errorf("timeout must be at least 1s, got %v", runTimeout)
		}
		return nil
	}

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	fileConfig, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags override the layered file configuration only when set.
	flags := cmd.Flags()
	if !flags.Changed("iterations") && fileConfig.Iterations > 0 {
		runIterations = fileConfig.Iterations
	}
	if !flags.Changed("timeout") && fileConfig.CaseTimeoutSeconds > 0 {
		runTimeout = time.Duration(fileConfig.CaseTimeoutSeconds) * time.Second
	}
	if !flags.Changed("report") && fileConfig.ReportDir != "" {
		runReportDir = fileConfig.ReportDir
	}
	if !flags.Changed("no-color") && fileConfig.NoColor {
		runNoColor = true
	}

	logLevel := logging.ParseLevel(fileConfig.LogLevel)
	if runDebug {
		logLevel = logging.LevelDebug
	}
	logging.Init(logLevel, os.Stderr)

	runnerConfig := harness.Config{
		Seed:               runSeed,
		ExecKey:            runExecKey,
		Filter:             runFilter,
		Iterations:         runIterations,
		CaseTimeoutSeconds: int(runTimeout / time.Second),
		ReportDir:          runReportDir,
	}

	reporter := harness.NewReporter(os.Stdout, !runNoColor)
	runner := harness.NewRunner(runnerConfig, reporter, nil, nil)

	code := runner.Run(registry.Suites())
	if code != harness.ExitPassed {
		if code < 0 {
			os.Exit(255)
		}
		os.Exit(code)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
