package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/st-little/anshin-meshi/internal/logging"
	"github.com/st-little/anshin-meshi/internal/logging/events"
	"github.com/st-little/anshin-meshi/internal/record"
)

// ErrFetchFailed is wrapped by every error Fetch returns.
var ErrFetchFailed = errors.New("fetch failed")

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves the record list from a single endpoint.
type Fetcher struct {
	endpoint string
	client   Doer
}

// New returns a Fetcher for endpoint. A nil client uses http.DefaultClient,
// which follows the API's redirect and applies no timeout.
func New(endpoint string, client Doer) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{endpoint: endpoint, client: client}
}

// Endpoint builds the API URL: <base>/<deploymentID>/exec?v=v<apiVersion>.
func Endpoint(base, deploymentID, apiVersion string) string {
	u := strings.TrimRight(base, "/") + "/" + url.PathEscape(deploymentID) + "/exec"
	q := url.Values{}
	q.Set("v", "v"+apiVersion)
	return u + "?" + q.Encode()
}

// URL returns the endpoint the fetcher requests.
func (f *Fetcher) URL() string {
	return f.endpoint
}

// Fetch performs one GET and decodes the body into records.
func (f *Fetcher) Fetch(ctx context.Context) ([]record.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetchFailed, resp.Status)
	}
	records, err := decodeRecords(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrFetchFailed, err)
	}
	return records, nil
}

// Start runs Fetch and settles cell with its outcome.
func (f *Fetcher) Start(ctx context.Context, cell *Cell) Result {
	events.Fetch.Start(f.endpoint)
	records, err := f.Fetch(ctx)
	if err != nil {
		logging.Error(err)
		events.Fetch.Failure(f.endpoint, err)
	} else {
		events.Fetch.Success(f.endpoint, len(records))
	}
	cell.Settle(records, err)
	return cell.Snapshot()
}

// wireRecord distinguishes a missing field from an empty one.
type wireRecord struct {
	NotificationNumber      *string `json:"notificationNumber"`
	ProductName             *string `json:"productName"`
	NotifierName            *string `json:"notifierName"`
	FunctionalityToDisplay  *string `json:"functionalityToDisplay"`
	Assessment              *string `json:"assessment"`
	GeneralReviewOfEvidence *string `json:"generalReviewOfEvidence"`
}

func decodeRecords(r io.Reader) ([]record.Record, error) {
	dec := json.NewDecoder(r)
	var wire []*wireRecord
	if err := dec.Decode(&wire); err != nil {
		return nil, err
	}
	if wire == nil {
		return nil, errors.New("body is not a JSON array")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON array")
	}
	records := make([]record.Record, 0, len(wire))
	for i, w := range wire {
		if w == nil {
			return nil, fmt.Errorf("element %d is null", i)
		}
		rec, err := w.record()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (w *wireRecord) record() (record.Record, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"notificationNumber", w.NotificationNumber},
		{"productName", w.ProductName},
		{"notifierName", w.NotifierName},
		{"functionalityToDisplay", w.FunctionalityToDisplay},
		{"assessment", w.Assessment},
		{"generalReviewOfEvidence", w.GeneralReviewOfEvidence},
	}
	for _, f := range fields {
		if f.value == nil {
			return record.Record{}, fmt.Errorf("missing field %q", f.name)
		}
	}
	return record.Record{
		NotificationNumber:      *w.NotificationNumber,
		ProductName:             *w.ProductName,
		NotifierName:            *w.NotifierName,
		FunctionalityToDisplay:  *w.FunctionalityToDisplay,
		Assessment:              *w.Assessment,
		GeneralReviewOfEvidence: *w.GeneralReviewOfEvidence,
	}, nil
}
