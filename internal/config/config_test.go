package config

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.App.Mouse {
		t.Fatalf("expected footer and mouse enabled by default")
	}
	if cfg.App.Format != FormatTable || cfg.App.Addr != defaultAddr {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envWidth + "=100",
		envHeight + "=30",
		envFooter + "=false",
		envTrace + "=1",
		envLogFile + "=/tmp/anshin.log",
		envFormat + "=yaml",
		envEndpoint + "=http://localhost:9000/records",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("expected 100x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled from env")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/anshin.log" {
		t.Fatalf("unexpected logging %#v", cfg.Logging)
	}
	if cfg.App.Format != FormatYAML || cfg.App.Endpoint != "http://localhost:9000/records" {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "60", "-o", "json", "--mouse=false", "Tea"}, []string{envWidth + "=100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 60 || cfg.App.Format != FormatJSON || cfg.App.Mouse {
		t.Fatalf("flags should win, got %#v", cfg.App)
	}
	if cfg.Flags["width"] != "60" {
		t.Fatalf("expected width flag recorded, got %q", cfg.Flags["width"])
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "Tea" {
		t.Fatalf("expected positional args kept, got %v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvironmentIgnored(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envFooter + "=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.ShowFooter {
		t.Fatalf("expected defaults for unparsable env, got %#v", cfg.App)
	}
}

func TestValidateRejects(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"negative width", []string{"--width=-1"}, "width"},
		{"negative height", []string{"--height=-5"}, "height"},
		{"unknown format", []string{"--format", "xml"}, "format"},
		{"relative endpoint", []string{"--endpoint", "records.json"}, "endpoint"},
		{"ftp endpoint", []string{"--endpoint", "ftp://example.com/x"}, "endpoint"},
		{"empty addr", []string{"--addr", " "}, "addr"},
		{"unknown flag", []string{"--socket", "x"}, "unknown flag"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestEndpointFlagIsHidden(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Bind(fs, nil)
	endpoint := fs.Lookup("endpoint")
	if endpoint == nil || !endpoint.Hidden {
		t.Fatalf("expected hidden endpoint flag, got %#v", endpoint)
	}
	if !strings.Contains(fs.FlagUsages(), "--width") || strings.Contains(fs.FlagUsages(), "--endpoint") {
		t.Fatalf("unexpected usage:\n%s", fs.FlagUsages())
	}
	if err := fs.Parse([]string{"--endpoint", "http://localhost:1/x"}); err != nil {
		t.Fatalf("hidden flag must still parse: %v", err)
	}
}
