package events

import "github.com/atomicstack/groupme-info/internal/logging"

type UITracer struct{}

type PanelTracer struct{}

type FilterTracer struct{}

type TooltipTracer struct{}

type SortTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Panel   = PanelTracer{}
	Filter  = FilterTracer{}
	Tooltip = TooltipTracer{}
	Sort    = SortTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(panelID string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"panel": panelID, "cursor": cursor})
}

func (UITracer) Refresh(kind string, entries int) {
	logging.Trace("ui.refresh", map[string]interface{}{"kind": kind, "entries": entries})
}

func (PanelTracer) Switch(linkID, target string, resolved bool) {
	logging.Trace("panel.switch", map[string]interface{}{
		"link":     linkID,
		"target":   target,
		"resolved": resolved,
	})
}

func (FilterTracer) Apply(listID, query string, shown, total int) {
	logging.Trace("filter.apply", map[string]interface{}{
		"list":  listID,
		"query": query,
		"shown": shown,
		"total": total,
	})
}

func (FilterTracer) Cleared(listID string) {
	logging.Trace("filter.clear", map[string]interface{}{"list": listID})
}

func (FilterTracer) WordBackspace(listID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"list": listID, "filter": filter})
}

func (FilterTracer) Cursor(listID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"list": listID, "cursor": pos})
}

func (FilterTracer) CursorWord(listID string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"list": listID, "cursor": pos})
}

func (FilterTracer) Append(listID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"list": listID, "filter": filter})
}

func (FilterTracer) Backspace(listID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"list": listID, "filter": filter})
}

func (TooltipTracer) Open(name string) {
	logging.Trace("tooltip.open", map[string]interface{}{"command": name})
}

func (TooltipTracer) Close(name string) {
	logging.Trace("tooltip.close", map[string]interface{}{"command": name})
}

func (TooltipTracer) Skip(name string) {
	logging.Trace("tooltip.skip", map[string]interface{}{"command": name})
}

func (SortTracer) Usage(entries int) {
	logging.Trace("sort.usage", map[string]interface{}{"entries": entries})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
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
