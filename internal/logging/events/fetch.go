package events

import "github.com/st-little/anshin-meshi/internal/logging"

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Start(url string) {
	logging.Trace("fetch.start", map[string]interface{}{"url": url})
}

func (FetchTracer) Success(url string, count int) {
	logging.Trace("fetch.success", map[string]interface{}{"url": url, "records": count})
}

func (FetchTracer) Failure(url string, err error) {
	payload := map[string]interface{}{"url": url}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("fetch.failure", payload)
}

func (FetchTracer) Ignored(status string) {
	logging.Trace("fetch.settle-ignored", map[string]interface{}{"status": status})
}
