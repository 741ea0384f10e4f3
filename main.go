package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/st-little/anshin-meshi/internal/app"
	"github.com/st-little/anshin-meshi/internal/buildinfo"
	"github.com/st-little/anshin-meshi/internal/config"
	"github.com/st-little/anshin-meshi/internal/logging"
	"github.com/st-little/anshin-meshi/internal/logging/events"
	"golang.org/x/term"
)

// configError marks failures that exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Environ())
	err := root.ExecuteContext(ctx)
	logging.Close()
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		os.Exit(2)
	}
	os.Exit(1)
}

func newRootCmd(environ []string) *cobra.Command {
	var binding *config.Binding

	// setup turns the parsed flags into a validated configuration and
	// starts logging.
	setup := func(cmd *cobra.Command, args []string, mode string) (config.Config, error) {
		cfg := binding.Config(args)
		if err := config.Validate(cfg); err != nil {
			return config.Config{}, configError{err}
		}
		logging.Configure(cfg.Logging.FilePath)
		logging.SetTraceEnabled(cfg.Logging.Trace)
		traceStartup(cfg, mode)
		return cfg, nil
	}
	finish := func(mode string, err error) error {
		events.App.Exit(mode, err)
		if err != nil {
			logging.Error(err)
		}
		return err
	}

	root := &cobra.Command{
		Use:   "anshin-meshi",
		Short: "Search food safety assessments by product name",
		Long: `anshin-meshi fetches the published assessments of foods with function
claims once and lets you search them by product name.

Run without arguments to start the interactive terminal view.`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args, "tui")
			if err != nil {
				return err
			}
			return finish("tui", app.Run(cmd.Context(), cfg.App))
		},
	}
	binding = config.Bind(root.PersistentFlags(), environ)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search view as a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args, "serve")
			if err != nil {
				return err
			}
			return finish("serve", app.Serve(cmd.Context(), cfg.App))
		},
	}

	list := &cobra.Command{
		Use:   "list [query]",
		Short: "Print products whose name contains query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd, args, "list")
			if err != nil {
				return err
			}
			query := strings.Join(args, "")
			return finish("list", app.List(cmd.Context(), cfg.App, query, cmd.OutOrStdout()))
		},
	}

	root.AddCommand(serve, list)
	return root
}

func traceStartup(cfg config.Config, mode string) {
	events.App.Start(startupTracePayload(cfg, mode))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, mode string) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"mode":     mode,
		"version":  buildinfo.Version,
		"endpoint": cfg.App.URL(),
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
