// Package audit writes a log line for every change an operator makes to the
// member table. Each run is tagged with its own session id.
package audit

import (
	"log"
	"strings"

	"github.com/rs/xid"

	"memberadmin/internal/eventbus"
)

// Recorder subscribes to the event bus and logs what it sees
type Recorder struct {
	session     string
	logger      *log.Logger
	unsubscribe []func()
}

// New attaches a recorder to bus. A nil logger uses the standard logger.
func New(bus eventbus.EventBus, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	r := &Recorder{
		session: xid.New().String(),
		logger:  logger,
	}

	r.unsubscribe = []func(){
		bus.Subscribe(eventbus.EventMembersLoaded, r.onLoaded),
		bus.Subscribe(eventbus.EventLoadFailed, r.onLoadFailed),
		bus.Subscribe(eventbus.EventMemberUpdated, r.onUpdated),
		bus.Subscribe(eventbus.EventMembersDeleted, r.onDeleted),
		bus.Subscribe(eventbus.EventError, r.onError),
	}
	return r
}

// Session returns the id stamped on every line from this recorder
func (r *Recorder) Session() string {
	return r.session
}

// Close detaches the recorder from the bus
func (r *Recorder) Close() {
	for _, unsubscribe := range r.unsubscribe {
		unsubscribe()
	}
	r.unsubscribe = nil
}

func (r *Recorder) printf(format string, args ...any) {
	r.logger.Printf("audit[%s]: "+format, append([]any{r.session}, args...)...)
}

func (r *Recorder) onLoaded(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.MembersLoadedEvent)
	if !ok {
		return
	}
	if event.Dropped > 0 {
		r.printf("loaded %d members from %s (%d dropped)", event.Count, event.Source, event.Dropped)
		return
	}
	r.printf("loaded %d members from %s", event.Count, event.Source)
}

func (r *Recorder) onLoadFailed(e eventbus.DomainEvent) {
	if event, ok := e.(eventbus.LoadFailedEvent); ok {
		r.printf("load from %s failed: %v", event.Source, event.Err)
	}
}

func (r *Recorder) onUpdated(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.MemberUpdatedEvent)
	if !ok {
		return
	}
	if event.Committed {
		r.printf("member %s updated name=%q email=%q", event.ID, event.Name, event.Email)
		return
	}
	r.printf("member %s edit closed name=%q email=%q", event.ID, event.Name, event.Email)
}

func (r *Recorder) onDeleted(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.MembersDeletedEvent)
	if !ok {
		return
	}
	if event.Bulk {
		r.printf("deleted %d members: %s", len(event.IDs), strings.Join(event.IDs, ","))
		return
	}
	r.printf("deleted member %s", strings.Join(event.IDs, ","))
}

func (r *Recorder) onError(e eventbus.DomainEvent) {
	if event, ok := e.(eventbus.ErrorEvent); ok {
		r.printf("error: %s: %v", event.Message, event.Err)
	}
}
