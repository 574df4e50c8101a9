package events

import "github.com/atomicstack/groupme-info/internal/logging"

type AppTracer struct{}

type StoreTracer struct{}

type BackendTracer struct{}

var (
	App     = AppTracer{}
	Store   = StoreTracer{}
	Backend = BackendTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (StoreTracer) Open(path string) {
	logging.Trace("store.open", map[string]interface{}{"path": path})
}

func (StoreTracer) Import(path string, commands int) {
	logging.Trace("store.import", map[string]interface{}{"path": path, "commands": commands})
}

func (StoreTracer) Snapshot(groupID string, commands int, found bool) {
	logging.Trace("store.snapshot", map[string]interface{}{"group": groupID, "commands": commands, "found": found})
}

func (BackendTracer) Poll(kind string, err error) {
	payload := map[string]interface{}{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.poll", payload)
}
