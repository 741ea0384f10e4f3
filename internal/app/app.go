package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/st-little/anshin-meshi/internal/buildinfo"
	"github.com/st-little/anshin-meshi/internal/content"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/format/table"
	"github.com/st-little/anshin-meshi/internal/record"
	"github.com/st-little/anshin-meshi/internal/ui"
	"github.com/st-little/anshin-meshi/internal/web"
	"gopkg.in/yaml.v3"
)

// Config describes user-provided application options.
type Config struct {
	Endpoint   string
	Width      int
	Height     int
	ShowFooter bool
	Mouse      bool
	Addr       string
	Format     string
}

// URL returns the records endpoint, preferring the override when set.
func (c Config) URL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fetch.Endpoint(buildinfo.APIBase, buildinfo.DeploymentID, buildinfo.APIVersion)
}

func newFetcher(cfg Config) *fetch.Fetcher {
	return fetch.New(cfg.URL(), nil)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(ctx context.Context, cfg Config) error {
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Fetcher:    newFetcher(cfg),
		Context:    ctx,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Serve starts the single fetch in the background and serves the HTML view
// until ctx is cancelled.
func Serve(ctx context.Context, cfg Config) error {
	gin.SetMode(gin.ReleaseMode)
	cell := fetch.NewCell()
	router, err := web.NewRouter(cell)
	if err != nil {
		return err
	}
	go newFetcher(cfg).Start(ctx, cell)
	return web.Serve(ctx, cfg.Addr, router)
}

// List fetches once and writes the records whose product name contains
// query in the configured format.
func List(ctx context.Context, cfg Config, query string, w io.Writer) error {
	result := newFetcher(cfg).Start(ctx, fetch.NewCell())
	if result.Status != fetch.Success {
		return result.Err
	}
	rows := record.Filter(result.Records, query)
	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeTable(w, rows)
}

func writeTable(w io.Writer, rows []record.Record) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, content.NoMatch)
		return err
	}
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, []string{"届出番号", "商品名", "届出者名", "評価"})
	for _, r := range rows {
		cells = append(cells, []string{r.NotificationNumber, r.ProductName, r.NotifierName, r.Assessment})
	}
	for _, line := range table.Format(cells, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
