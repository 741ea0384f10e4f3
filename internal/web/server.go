// Package web serves the product search view as a single HTML document. The
// view state travels in the query string and is rebuilt on every request by
// replaying actions through the same reducer the terminal UI uses.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/st-little/anshin-meshi/internal/content"
	"github.com/st-little/anshin-meshi/internal/fetch"
	"github.com/st-little/anshin-meshi/internal/logging"
	"github.com/st-little/anshin-meshi/internal/logging/events"
	"github.com/st-little/anshin-meshi/internal/record"
)

const (
	EndPointIndex   = "/"
	EndPointRecords = "/api/records"
	EndPointHealth  = "/healthz"

	shutdownTimeout = 5 * time.Second
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// NewRouter builds the gin engine serving the view backed by cell.
func NewRouter(cell *fetch.Cell) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.SetHTMLTemplate(tmpl)

	h := &handlers{cell: cell}
	router.GET(EndPointIndex, h.index)
	router.GET(EndPointRecords, h.records)
	router.GET(EndPointHealth, h.health)
	return router, nil
}

type handlers struct {
	cell *fetch.Cell
}

func (h *handlers) index(c *gin.Context) {
	result := h.cell.Snapshot()
	st := DecodeState(c.Request.URL.Query(), result.Records)
	events.Web.Render(c.Request.URL.Path, result.Status.String(), st)
	c.HTML(http.StatusOK, "index", buildPage(st, result))
}

func (h *handlers) records(c *gin.Context) {
	result := h.cell.Snapshot()
	switch result.Status {
	case fetch.Pending:
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": result.Status.String()})
	case fetch.Failure:
		c.JSON(http.StatusBadGateway, gin.H{
			"status": result.Status.String(),
			"error":  content.FetchFailed,
		})
	default:
		c.JSON(http.StatusOK, record.Filter(result.Records, c.Query("q")))
	}
}

func (h *handlers) health(c *gin.Context) {
	result := h.cell.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":  result.Status.String(),
		"records": len(result.Records),
	})
}

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		events.Web.Listen(addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			logging.Error(err)
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	events.Web.Shutdown(ctx.Err().Error())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
