// Package main is the entry point for the LeaseGuard CLI application.
// LeaseGuard analyzes residential lease documents against tenant
// protection law and answers questions about the findings.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/normanking/leaseguard/internal/api"
	"github.com/normanking/leaseguard/internal/config"
	"github.com/normanking/leaseguard/internal/insight"
	"github.com/normanking/leaseguard/internal/logging"
	"github.com/normanking/leaseguard/internal/prefs"
	"github.com/normanking/leaseguard/internal/ui"
	"github.com/normanking/leaseguard/pkg/lease"
)

var (
	version  = "0.1.0"
	cfgPath  string
	endpoint string
	verbose  bool
	jsonOut  bool
	log      *logging.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leaseguard",
		Short: "LeaseGuard - Lease document analysis for tenants",
		Long: `LeaseGuard checks residential lease documents against tenant
protection law:
  • Upload a lease scan or PDF for clause-by-clause analysis
  • Review violations with severity and legal references
  • Ask follow-up questions about the findings
  • Search analyzed content and view processing statistics

Start interactive mode:  leaseguard
Analyze a document:      leaseguard analyze lease.pdf
Configuration:           leaseguard config show`,
		PersistentPreRunE: initLogging,
		RunE:              runTUI,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default ~/.leaseguard/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("LeaseGuard v%s\n", version)
		},
	})

	// One-shot commands
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(insightsCmd())

	// Config command group
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// LOGGING INITIALIZATION
// ═══════════════════════════════════════════════════════════════════════════════

// initLogging bootstraps a console-only logger so early failures are
// visible. The configured level and log file are applied once the
// config is loaded, in configureLogging.
func initLogging(cmd *cobra.Command, args []string) error {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = logging.LevelDebug
	}

	log = logging.New(cfg)
	logging.SetGlobal(log)

	return nil
}

// configureLogging applies the logging section of the loaded config.
// The --verbose flag wins over the configured level.
func configureLogging(cfg *config.Config) {
	if log == nil {
		return
	}

	if !verbose {
		logging.SetLevel(logging.ParseLevel(cfg.Logging.Level))
	}

	if cfg.Logging.File != "" {
		if err := log.SetFileOutput(cfg.Logging.File); err != nil {
			log.Warn("Failed to open log file %s: %v", cfg.Logging.File, err)
			return
		}
		log.Debug("LeaseGuard session started - logging to %s", cfg.Logging.File)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// SHARED SETUP
// ═══════════════════════════════════════════════════════════════════════════════

// loadConfig resolves the effective configuration, with the --endpoint
// flag taking precedence over the file and environment.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFromPath(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if endpoint != "" {
		cfg.API.Endpoint = endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	configureLogging(cfg)

	return cfg, nil
}

// newAPIClient builds the backend client with the configured timeouts.
// Request tracing goes to stderr in verbose mode and is silent otherwise.
func newAPIClient(cfg *config.Config) *api.Client {
	zl := zerolog.Nop()
	if verbose {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return api.NewClient(cfg.API.Endpoint,
		api.WithLogger(zl),
		api.WithTimeouts(
			time.Duration(cfg.API.ConnectTimeoutSec)*time.Second,
			time.Duration(cfg.API.RequestTimeoutSec)*time.Second,
		),
	)
}

// ═══════════════════════════════════════════════════════════════════════════════
// TUI COMMAND (ROOT)
// ═══════════════════════════════════════════════════════════════════════════════

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := newAPIClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if !client.Available(ctx) {
		fmt.Fprintf(os.Stderr, "Warning: backend at %s is not responding\n", client.Endpoint())
	}

	prefPath, err := prefs.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolve preference path: %w", err)
	}

	var initialDoc string
	if len(args) > 0 {
		initialDoc = args[0]
	}

	// Console logging would corrupt the alternate screen
	logging.DisableConsoleOutput()
	defer logging.EnableConsoleOutput()

	lipgloss.SetColorProfile(termenv.TrueColor)

	prog, err := ui.New(&ui.Config{
		Backend:         client,
		Prefs:           prefs.NewStore(prefPath),
		InitialDocument: initialDoc,
	})
	if err != nil {
		return err
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// ANALYZE COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Upload a lease document and print the analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newAPIClient(cfg)

			if err := api.ValidateUpload(args[0]); err != nil {
				return err
			}

			ctx, cancel := requestContext(cfg)
			defer cancel()

			analysis, err := client.AnalyzeDocument(ctx, args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(analysis)
			}

			printAnalysis(analysis)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw analysis as JSON")
	return cmd
}

// printAnalysis renders the analysis as a plain terminal report.
func printAnalysis(analysis *lease.Analysis) {
	summary := analysis.Summary

	title := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true)

	fmt.Println(title.Render("Analysis Summary"))
	fmt.Printf("  Lease ID:       %s\n", analysis.LeaseID)
	fmt.Printf("  Total clauses:  %d\n", summary.TotalClauses)
	fmt.Printf("  Flagged:        %d\n", summary.FlaggedClauses)
	fmt.Printf("  Compliant:      %d\n", summary.Compliant())
	fmt.Printf("  By severity:    critical %d, high %d, medium %d, low %d\n",
		summary.CriticalCount, summary.HighCount, summary.MediumCount, summary.LowCount)

	if len(analysis.Violations) == 0 {
		fmt.Println("\nNo violations found.")
		return
	}

	sorted := make([]lease.Violation, len(analysis.Violations))
	copy(sorted, analysis.Violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})

	fmt.Println()
	fmt.Println(title.Render(fmt.Sprintf("Violations (%d)", len(sorted))))
	for _, v := range sorted {
		fmt.Printf("  [%s] %s\n", strings.ToUpper(string(v.Severity)), v.Type)
		fmt.Printf("    %s\n", v.Description)
		if v.LegalReference != "" {
			fmt.Println(muted.Render("    Ref: " + v.LegalReference))
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ASK COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func askCmd() *cobra.Command {
	var leaseID string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about an analyzed lease",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return fmt.Errorf("ask: empty question")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newAPIClient(cfg)

			ctx, cancel := requestContext(cfg)
			defer cancel()

			answer, err := client.Ask(ctx, question, leaseID)
			if err != nil {
				return err
			}

			fmt.Println(answer)
			return nil
		},
	}
	cmd.Flags().StringVar(&leaseID, "lease", "", "lease id from a prior analysis")
	cmd.MarkFlagRequired("lease")
	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// SEARCH COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func searchCmd() *cobra.Command {
	var (
		leaseID  string
		limit    int
		language string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Hybrid search over analyzed lease content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newAPIClient(cfg)

			ctx, cancel := requestContext(cfg)
			defer cancel()

			matches, err := client.Search(ctx, api.SearchRequest{
				Query:    strings.Join(args, " "),
				LeaseID:  leaseID,
				Limit:    limit,
				Language: language,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(matches)
			}

			if len(matches) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for i, match := range matches {
				fmt.Printf("%d. %s\n", i+1, match.Text)
				if match.Score != nil {
					fmt.Printf("   score: %.3f\n", *match.Score)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&leaseID, "lease", "", "restrict to one lease id")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of matches")
	cmd.Flags().StringVar(&language, "language", "en", "query language")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print matches as JSON")
	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATS COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func statsCmd() *cobra.Command {
	var (
		metric    string
		operation string
		window    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show processing-time statistics from the analytics service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newAPIClient(cfg)

			ctx, cancel := requestContext(cfg)
			defer cancel()

			to := time.Now()
			from := to.Add(-window)

			avg, err := client.AverageProcessingTime(ctx, metric, operation, from, to)
			if err != nil {
				return err
			}

			fmt.Printf("Average %s (%s) over %s: %.0f ms\n", metric, operation, window, avg)
			return nil
		},
	}
	cmd.Flags().StringVar(&metric, "metric", insight.MetricProcessingTime, "metric name")
	cmd.Flags().StringVar(&operation, "operation", insight.OperationTotal, "operation filter")
	cmd.Flags().DurationVar(&window, "window", insight.Window, "trailing window")
	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// INSIGHTS COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights <lease-id>",
		Short: "Run the fee-search and analytics aggregation for a lease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newAPIClient(cfg)

			ctx, cancel := requestContext(cfg)
			defer cancel()

			snap, err := insight.Collect(ctx, client, args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(snap)
			}

			if len(snap.Matches) == 0 {
				fmt.Println("No fee-related passages found.")
			} else {
				fmt.Println("Fee-related passages:")
				for _, match := range snap.Matches {
					fmt.Printf("  • %s\n", match.Text)
				}
			}
			fmt.Printf("Average processing time (%s): %.0f ms\n", insight.Window, snap.AvgProcessingMs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the snapshot as JSON")
	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// CONFIG COMMANDS
// ═══════════════════════════════════════════════════════════════════════════════

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage LeaseGuard configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printJSON(cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Println(cfg.GetConfigPath())
			return nil
		},
	})

	return cmd
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPERS
// ═══════════════════════════════════════════════════════════════════════════════

// requestContext bounds a one-shot command by the configured request timeout.
func requestContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := time.Duration(cfg.API.RequestTimeoutSec) * time.Second
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
