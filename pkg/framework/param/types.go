package param

import (
	"fmt"
	"sort"
	"sync"

	"github.com/justyntemme/genart-go/pkg/framework/debug"
	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
)

// Types maps type names to their implementations. It starts out with the
// built-in types and can be extended at runtime.
type Types struct {
	impls map[string]Impl
	log   *debug.Logger
	mu    sync.RWMutex
}

// NewTypes creates a registry seeded with the built-in types.
func NewTypes(log *debug.Logger) *Types {
	if log == nil {
		log = debug.Default()
	}
	t := &Types{
		impls: make(map[string]Impl, len(builtins)),
		log:   log,
	}
	for name, impl := range builtins {
		t.impls[name] = impl
	}
	return t
}

var builtins = map[string]Impl{
	TypeRange:    rangeImpl{},
	TypeChoice:   choiceImpl{},
	TypeWeighted: weightedImpl{},
	TypeToggle:   toggleImpl{},
	TypeColor:    colorImpl{},
	TypeText:     textImpl{},
	TypeNumList:  numListImpl{},
	TypeStrList:  strListImpl{},
	TypeVector:   vectorImpl{},
	TypeXY:       xyImpl{},
	TypeRamp:     rampImpl{},
	TypeDate:     dateImpl{withTime: false},
	TypeDateTime: dateImpl{withTime: true},
	TypeTime:     timeImpl{},
	TypeBigInt:   bigIntImpl{},
	TypeBinary:   binaryImpl{},
	TypeImage:    imageImpl{},
}

// Register adds or replaces a type. Replacing an existing type is allowed
// but logged.
func (t *Types) Register(name string, impl Impl) error {
	if name == "" {
		return apperrors.New(apperrors.CodeDeclarationInvalid, "empty param type name")
	}
	if impl == nil {
		return apperrors.New(apperrors.CodeDeclarationInvalid, fmt.Sprintf("nil implementation for param type %q", name))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.impls[name]; exists {
		t.log.Warn("overriding param type %q", name)
	}
	t.impls[name] = impl
	return nil
}

// Lookup returns the implementation for a type name.
func (t *Types) Lookup(name string) (Impl, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	impl, ok := t.impls[name]
	if !ok {
		return nil, apperrors.WithMetadata(apperrors.CodeParamTypeUnknown,
			fmt.Sprintf("unknown param type %q", name), map[string]string{"type": name})
	}
	return impl, nil
}

// Has reports whether a type is registered.
func (t *Types) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.impls[name]
	return ok
}

// Names returns the registered type names in sorted order.
func (t *Types) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.impls))
	for name := range t.impls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
