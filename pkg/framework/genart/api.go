// Package genart implements the coordinator that owns an artwork's
// parameters and lifecycle.
package genart

import (
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/justyntemme/genart-go/pkg/framework/config"
	"github.com/justyntemme/genart-go/pkg/framework/debug"
	"github.com/justyntemme/genart-go/pkg/framework/message"
	"github.com/justyntemme/genart-go/pkg/framework/param"
	"github.com/justyntemme/genart-go/pkg/random"
)

// Version of the coordinator protocol reported by Info.
const Version = "1.0.0"

// API is the coordinator of one artwork instance. Create it with New and
// hand it to whatever drives rendering and the platform adapter.
type API struct {
	id     string
	cfg    config.Config
	log    *debug.Logger
	types  *param.Types
	bus    *message.Bus
	tracer trace.Tracer
	notify message.Scope

	// fallback feeds randomization before an adapter is attached.
	fallback *random.SFC32

	mu      sync.Mutex
	state   State
	adapter Adapter
	timing  TimeProvider
	update  UpdateFunc
	params  *param.Set
	loop    int
}

// Option configures an API.
type Option func(*API)

// WithID sets the instance ID used to address inbound messages.
func WithID(id string) Option {
	return func(a *API) { a.id = id }
}

// WithConfig applies configuration loaded from the environment.
func WithConfig(cfg config.Config) Option {
	return func(a *API) { a.cfg = cfg }
}

// WithLogger sets the logger.
func WithLogger(log *debug.Logger) Option {
	return func(a *API) { a.log = log }
}

// WithTypes shares a type registry between instances.
func WithTypes(types *param.Types) Option {
	return func(a *API) { a.types = types }
}

// WithBus sets the message bus. Its ID is replaced by the API's.
func WithBus(bus *message.Bus) Option {
	return func(a *API) { a.bus = bus }
}

// WithTracer sets the tracer for lifecycle spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *API) { a.tracer = tracer }
}

// New creates a coordinator in the init state.
func New(opts ...Option) *API {
	a := &API{
		cfg:   config.Default(),
		state: StateInit,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.id == "" {
		a.id = a.cfg.APIID
	}
	if a.id == "" {
		a.id = uuid.NewString()
	}
	if a.log == nil {
		a.log = debug.Default()
	}
	a.log = a.log.Named("api")
	if a.types == nil {
		a.types = param.NewTypes(a.log)
	}
	if a.bus == nil {
		a.bus = message.NewBus(a.id, a.log)
	} else {
		a.bus.SetID(a.id)
	}
	if a.tracer == nil {
		a.tracer = noop.NewTracerProvider().Tracer("")
	}
	if scope, err := message.ParseScope(a.cfg.Notify); err == nil {
		a.notify = scope
	} else {
		a.log.Warn("%v, using %s", err, message.ScopeAll)
		a.notify = message.ScopeAll
	}
	if a.cfg.PollInterval <= 0 {
		a.cfg.PollInterval = config.Default().PollInterval
	}

	seed, err := random.NewSeed()
	if err != nil {
		seed = random.FormatSeed([4]uint32{})
	}
	a.fallback, _ = random.NewSFC32(seed)

	a.registerHandlers()
	return a
}

// ID returns the instance ID.
func (a *API) ID() string {
	return a.id
}

// Bus returns the message bus.
func (a *API) Bus() *message.Bus {
	return a.bus
}

// Types returns the param type registry.
func (a *API) Types() *param.Types {
	return a.types
}

// RegisterParamType adds or overrides a param type.
func (a *API) RegisterParamType(name string, impl param.Impl) error {
	return a.types.Register(name, impl)
}

// Adapter returns the attached adapter, or nil.
func (a *API) Adapter() Adapter {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.adapter
}

// PRNG returns the adapter's generator, falling back to a generator with a
// fresh seed while no adapter is attached.
func (a *API) PRNG() random.PRNG {
	if ad := a.Adapter(); ad != nil {
		if p := ad.PRNG(); p != nil {
			return p
		}
	}
	return a.fallback
}

// Random returns a source drawing from PRNG.
func (a *API) Random() random.Source {
	return random.SourceOf(a.PRNG())
}

// SetTraits forwards traits to adapters that accept them.
func (a *API) SetTraits(traits map[string]any) {
	if ts, ok := a.Adapter().(TraitSetter); ok {
		ts.SetTraits(traits)
	}
}

// Capture asks the adapter to take a preview capture.
func (a *API) Capture() {
	if c, ok := a.Adapter().(Capturer); ok {
		c.Capture()
	}
}
