package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/st-little/anshin-meshi/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth    = "ANSHIN_MESHI_WIDTH"
	envHeight   = "ANSHIN_MESHI_HEIGHT"
	envFooter   = "ANSHIN_MESHI_FOOTER"
	envMouse    = "ANSHIN_MESHI_MOUSE"
	envTrace    = "ANSHIN_MESHI_TRACE"
	envLogFile  = "ANSHIN_MESHI_LOG_FILE"
	envEndpoint = "ANSHIN_MESHI_ENDPOINT"
	envAddr     = "ANSHIN_MESHI_ADDR"
	envFormat   = "ANSHIN_MESHI_FORMAT"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"

	defaultAddr = ":8080"
)

// Binding holds flag values registered on a flag set. Environment variables
// supply the defaults so explicit flags always win.
type Binding struct {
	fs       *pflag.FlagSet
	width    *int
	height   *int
	footer   *bool
	mouse    *bool
	trace    *bool
	logFile  *string
	endpoint *string
	addr     *string
	format   *string
}

// Bind registers the application flags on fs.
func Bind(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	b := &Binding{
		fs:       fs,
		width:    fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:   fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:   fs.Bool("footer", envOrBool(env, envFooter, true), "show key help and credits below the table"),
		mouse:    fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse clicks and wheel scrolling"),
		trace:    fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:  fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		endpoint: fs.String("endpoint", envOrDefault(env, envEndpoint, ""), "override the records API URL (development only)"),
		addr:     fs.String("addr", envOrDefault(env, envAddr, defaultAddr), "listen address for serve"),
		format:   fs.StringP("format", "o", envOrDefault(env, envFormat, FormatTable), "output format for list (table/json/yaml)"),
	}
	// the endpoint is compiled in; the override stays out of --help
	_ = fs.MarkHidden("endpoint")
	return b
}

// Config snapshots the parsed flag values. args are the positional arguments
// recorded for tracing.
func (b *Binding) Config(args []string) Config {
	return Config{
		App: app.Config{
			Endpoint:   strings.TrimSpace(*b.endpoint),
			Width:      *b.width,
			Height:     *b.height,
			ShowFooter: *b.footer,
			Mouse:      *b.mouse,
			Addr:       *b.addr,
			Format:     strings.ToLower(strings.TrimSpace(*b.format)),
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"width":    strconv.Itoa(*b.width),
			"height":   strconv.Itoa(*b.height),
			"footer":   strconv.FormatBool(*b.footer),
			"mouse":    strconv.FormatBool(*b.mouse),
			"trace":    strconv.FormatBool(*b.trace),
			"logFile":  *b.logFile,
			"endpoint": *b.endpoint,
			"addr":     *b.addr,
			"format":   *b.format,
		},
		Args: append([]string(nil), args...),
	}
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("anshin-meshi", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	b := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := b.Config(fs.Args())
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures the configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	switch cfg.App.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be one of table, json, yaml (got %q)", cfg.App.Format)
	}
	if cfg.App.Endpoint != "" {
		u, err := url.Parse(cfg.App.Endpoint)
		if err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("endpoint must be an absolute http(s) URL (got %q)", cfg.App.Endpoint)
		}
	}
	if strings.TrimSpace(cfg.App.Addr) == "" {
		return fmt.Errorf("addr must not be empty")
	}
	return nil
}
