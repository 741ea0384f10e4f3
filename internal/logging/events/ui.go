package events

import "github.com/st-little/anshin-meshi/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Dispatch(action string, before, after interface{}) {
	logging.Trace("ui.dispatch", map[string]interface{}{
		"action": action,
		"before": before,
		"after":  after,
	})
}

func (UITracer) Cursor(cursor, visible int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "visible": visible})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) NoMatch(query string, suggestions []string) {
	logging.Trace("filter.no-match", map[string]interface{}{"query": query, "suggestions": suggestions})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
