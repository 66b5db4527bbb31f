// Package cmd provides the command-line interface for memberadmin.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"memberadmin/internal/audit"
	"memberadmin/internal/config"
	"memberadmin/internal/eventbus"
	"memberadmin/internal/provider"
	"memberadmin/internal/ui"
)

// options holds the persistent flags shared by every subcommand
type options struct {
	source     string
	configPath string
	logFile    string
}

// newRootCmd builds the command tree. Running it without a subcommand opens
// the interactive table.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "memberadmin",
		Short: "Browse, search, edit and delete member records in the terminal.",
		Long: `memberadmin loads a member list once from a JSON endpoint, an S3 ` +
			`object or a local file, and shows it as a paginated table. Edits and ` +
			`deletes are kept in memory for the session.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.source, "source", "s", "", "member source: http(s) URL, s3://bucket/key or file path")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.logFile, "log", "", "log file path")

	rootCmd.AddCommand(newDumpCmd(opts), newConfigCmd(opts))
	return rootCmd
}

// Execute runs the root command, exiting non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and layers the flags over it. A broken
// config file is reported and replaced by defaults.
func loadConfig(opts *options, stderr io.Writer) *config.Config {
	svc := config.NewConfigServiceWithPath(opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v; using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	cfg.Apply(config.Overrides{Source: opts.source, LogFile: opts.logFile})
	return cfg
}

// setupLogging sends the standard logger to path. Failure leaves logging on
// stderr.
func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(os.Stderr)
		_ = logFile.Close()
	}
}

// shutdownBus drains queued events into the recorder before detaching it
func shutdownBus(bus eventbus.EventBus, recorder *audit.Recorder) {
	bus.Close()
	recorder.Close()
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg := loadConfig(opts, cmd.ErrOrStderr())

	closeLog := setupLogging(cfg.LogFile)
	defer closeLog()

	p, err := provider.New(cfg.Source)
	if err != nil {
		return err
	}

	bus := eventbus.New()
	recorder := audit.New(bus, nil)
	defer shutdownBus(bus, recorder)
	log.Printf("session %s started, source %s", recorder.Session(), p.Source())

	ctx := cmd.Context()
	loader := provider.NewLoader(p, bus, provider.LoaderOptions{StrictIDs: cfg.StrictIDs})
	model := ui.NewModel(ctx, bus, cfg, loader)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(program)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Printf("session %s interrupted", recorder.Session())
			return nil
		}
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("session %s ended", recorder.Session())
	return nil
}
