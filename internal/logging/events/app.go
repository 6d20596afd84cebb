package events

import "github.com/atomicstack/tmux-popup-multiselect/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(submitted bool, count int) {
	logging.Trace("app.exit", map[string]interface{}{"submitted": submitted, "selected": count})
}
