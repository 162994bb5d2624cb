package message

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/justyntemme/genart-go/pkg/framework/debug"
)

// Listener receives broadcasts in the publishing window.
type Listener func(Message)

// Handler executes an inbound command.
type Handler func(ctx context.Context, msg Message) error

// Endpoint is a destination outside the current window, e.g. a parent
// frame or a websocket peer.
type Endpoint interface {
	Post(msg Message) error
}

// EndpointFunc adapts a function to Endpoint.
type EndpointFunc func(Message) error

// Post implements Endpoint.
func (f EndpointFunc) Post(msg Message) error { return f(msg) }

// Bus routes broadcasts by scope and dispatches addressed inbound commands.
type Bus struct {
	id        string
	log       *debug.Logger
	parent    Endpoint
	listeners map[int]Listener
	nextID    int
	handlers  map[Type]Handler
	mu        sync.RWMutex
}

// NewBus creates a bus for the coordinator with the given instance ID.
func NewBus(id string, log *debug.Logger) *Bus {
	if log == nil {
		log = debug.Default()
	}
	return &Bus{
		id:        id,
		log:       log.Named("bus"),
		listeners: make(map[int]Listener),
		handlers:  make(map[Type]Handler),
	}
}

// ID returns the instance ID messages are stamped and filtered with.
func (b *Bus) ID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.id
}

// SetID changes the instance ID.
func (b *Bus) SetID(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.id = id
}

// Subscribe registers a same-window listener. The returned function
// removes it.
func (b *Bus) Subscribe(fn Listener) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// SetParent sets the endpoint parent-scoped broadcasts go to. A nil
// endpoint means there is no distinct parent.
func (b *Bus) SetParent(ep Endpoint) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.parent = ep
}

// Publish stamps msg with the instance ID and delivers it according to
// scope. Delivery failures are logged.
func (b *Bus) Publish(msg Message, scope Scope) {
	if scope == ScopeNone || scope == "" {
		return
	}

	b.mu.RLock()
	if msg.APIID == "" {
		msg.APIID = b.id
	}
	var listeners []Listener
	if scope.self() {
		listeners = make([]Listener, 0, len(b.listeners))
		for i := 0; i < b.nextID; i++ {
			if l, ok := b.listeners[i]; ok {
				listeners = append(listeners, l)
			}
		}
	}
	parent := b.parent
	b.mu.RUnlock()

	for _, l := range listeners {
		l(msg)
	}
	if scope.parent() && parent != nil {
		if err := parent.Post(msg); err != nil {
			b.log.Warn("post %s to parent: %v", msg.Type, err)
		}
	}
}

// Handle registers the handler for an inbound command type.
func (b *Bus) Handle(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = h
}

// ErrMalformed is returned by Receive for payloads that are not JSON
// objects.
var ErrMalformed = errors.New("malformed message")

// Receive peeks at the type and address of a raw inbound payload and
// dispatches it if it is a known command addressed to this instance.
// Unknown and misaddressed messages are ignored. It reports whether the
// message was dispatched.
func (b *Bus) Receive(ctx context.Context, data []byte) (bool, error) {
	if !gjson.ValidBytes(data) {
		return false, ErrMalformed
	}
	head := gjson.GetManyBytes(data, "type", "apiID")
	if !head[0].Exists() {
		return false, ErrMalformed
	}
	t := Type(head[0].String())
	if _, ok := b.handler(t); !ok || !b.addressed(head[1].String()) {
		b.log.Debug("ignoring %s for %q", t, head[1].String())
		return false, nil
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return false, err
	}
	return b.Dispatch(ctx, msg), nil
}

// Dispatch runs the handler for an already decoded message. Handler
// errors are logged and not returned.
func (b *Bus) Dispatch(ctx context.Context, msg Message) bool {
	h, ok := b.handler(msg.Type)
	if !ok || !b.addressed(msg.APIID) {
		return false
	}
	if err := h(ctx, msg); err != nil {
		b.log.Warn("handle %s: %v", msg.Type, err)
	}
	return true
}

func (b *Bus) handler(t Type) (Handler, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	h, ok := b.handlers[t]
	return h, ok
}

func (b *Bus) addressed(id string) bool {
	return id == Wildcard || id == b.ID()
}
