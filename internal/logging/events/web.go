package events

import "github.com/st-little/anshin-meshi/internal/logging"

type WebTracer struct{}

var Web = WebTracer{}

func (WebTracer) Listen(addr string) {
	logging.Trace("web.listen", map[string]interface{}{"addr": addr})
}

func (WebTracer) Render(path, status string, state interface{}) {
	logging.Trace("web.render", map[string]interface{}{"path": path, "fetch": status, "state": state})
}

func (WebTracer) Shutdown(reason string) {
	logging.Trace("web.shutdown", map[string]interface{}{"reason": reason})
}
