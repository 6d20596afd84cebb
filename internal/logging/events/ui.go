package events

import "github.com/atomicstack/tmux-popup-multiselect/internal/logging"

type SelectTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

type SourceTracer struct{}

var (
	Select  = SelectTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
	Source  = SourceTracer{}
)

func (SelectTracer) Focus(value string, start, end int) {
	logging.Trace("select.focus", map[string]interface{}{"value": value, "windowStart": start, "windowEnd": end})
}

func (SelectTracer) Toggle(value string, selected bool) {
	logging.Trace("select.toggle", map[string]interface{}{"value": value, "selected": selected})
}

func (SelectTracer) Change(selected []string) {
	logging.Trace("select.change", map[string]interface{}{"selected": selected})
}

func (SelectTracer) Submit(selected []string) {
	logging.Trace("select.submit", map[string]interface{}{"selected": selected})
}

func (SelectTracer) Reset(reason string, options, visible int) {
	logging.Trace("select.reset", map[string]interface{}{"reason": reason, "options": options, "visible": visible})
}

func (SelectTracer) Ignored(key string) {
	logging.Trace("select.ignored", map[string]interface{}{"key": key})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (CommandTracer) Dispatch(name string) {
	logging.Trace("command.dispatch", map[string]interface{}{"command": name})
}

func (CommandTracer) Result(name string, focused string, selected int) {
	logging.Trace("command.result", map[string]interface{}{"command": name, "focused": focused, "selected": selected})
}

func (SourceTracer) Loaded(kind string, count int) {
	logging.Trace("source.loaded", map[string]interface{}{"source": kind, "options": count})
}

func (SourceTracer) Failed(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.failed", map[string]interface{}{"source": kind, "error": err.Error()})
}

func (SourceTracer) Duplicate(kind, value string) {
	logging.Trace("source.duplicate", map[string]interface{}{"source": kind, "value": value})
}
