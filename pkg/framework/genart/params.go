package genart

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/framework/message"
	"github.com/justyntemme/genart-go/pkg/framework/param"
	"github.com/justyntemme/genart-go/pkg/random"
)

// SetParams resolves a declaration and makes it the active set. The caller's
// set is not modified. On failure the previous set stays active and the API
// moves to the error state.
func (a *API) SetParams(ctx context.Context, decl *param.Set) (*Accessor, error) {
	ctx, span := a.tracer.Start(ctx, "genart.SetParams",
		trace.WithAttributes(attribute.Int("genart.params.declared", decl.Len())))
	defer span.End()

	if err := a.setParams(ctx, decl); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.fail(err)
		return nil, err
	}
	return &Accessor{api: a}, nil
}

func (a *API) setParams(ctx context.Context, decl *param.Set) error {
	set := decl.Clone()
	if set == nil {
		set, _ = param.NewSet()
	}

	ad := a.Adapter()
	if aug, ok := ad.(ParamAugmenter); ok {
		if augmented := aug.AugmentParams(set); augmented != nil {
			set = augmented
		}
	}

	rnd := a.Random()
	for _, p := range set.All() {
		if err := a.resolve(p, rnd); err != nil {
			return err
		}
	}

	a.mu.Lock()
	prev := a.params
	a.params = set
	a.mu.Unlock()

	restore := func() {
		a.mu.Lock()
		a.params = prev
		a.mu.Unlock()
	}
	if ad != nil {
		if initializer, ok := ad.(ParamInitializer); ok {
			if err := initializer.InitParams(ctx, set.Clone()); err != nil {
				restore()
				return apperrors.Wrap(apperrors.CodeAdapterFailed, "init params", err)
			}
		}
		if err := a.UpdateParams(ctx, message.ScopeNone); err != nil {
			restore()
			return err
		}
	}

	if specs := a.ParamSpecs(); specs.Len() > 0 {
		a.bus.Publish(message.Message{
			Type:   message.TypeParams,
			Params: specs.Flatten(),
		}, a.notify)
	}
	return nil
}

// resolve fills in the default, state and nested params of a declared param.
func (a *API) resolve(p *param.Param, rnd random.Source) error {
	if err := param.ValidateID(p.ID); err != nil {
		return err
	}
	impl, err := a.types.Lookup(p.Type)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeOf(err), fmt.Sprintf("param %q", p.ID), err)
	}

	if c, ok := impl.(param.Composite); ok && p.Params == nil {
		p.Params = c.NestedParams(p)
	}
	keys := make([]string, 0, len(p.Params))
	for key := range p.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := a.resolve(p.Params[key], rnd); err != nil {
			return apperrors.Wrap(apperrors.CodeOf(err), fmt.Sprintf("param %q", p.ID), err)
		}
	}

	if p.Default == nil {
		switch {
		case isRandomizer(impl):
			p.Default = param.Coerce(impl, p, impl.(param.Randomizer).Randomize(p, rnd))
			p.State = param.StateRandom
		case isReader(impl):
			p.State = param.StateDynamic
		default:
			return apperrors.WithMetadata(apperrors.CodeDeclarationInvalid,
				fmt.Sprintf("param %q has no default and type %q cannot produce one", p.ID, p.Type),
				map[string]string{"param": p.ID, "type": p.Type})
		}
	} else {
		if !impl.Validate(p, p.Default) {
			return apperrors.WithMetadata(apperrors.CodeDeclarationInvalid,
				fmt.Sprintf("param %q: invalid default %v", p.ID, p.Default),
				map[string]string{"param": p.ID, "type": p.Type})
		}
		p.Default = param.Coerce(impl, p, p.Default)
		p.State = param.StateDefault
	}

	if p.Value != nil {
		if !impl.Validate(p, p.Value) {
			return apperrors.WithMetadata(apperrors.CodeDeclarationInvalid,
				fmt.Sprintf("param %q: invalid value %v", p.ID, p.Value),
				map[string]string{"param": p.ID, "type": p.Type})
		}
		p.Value = param.Coerce(impl, p, p.Value)
		p.State = param.StateCustom
	}
	return nil
}

func isRandomizer(impl param.Impl) bool {
	_, ok := impl.(param.Randomizer)
	return ok
}

func isReader(impl param.Impl) bool {
	_, ok := impl.(param.Reader)
	return ok
}

// UpdateParams asks the adapter for overrides of every active param, in
// declaration order. Nested updates are applied silently before the top
// level write, which is notified with scope notify. Invalid override values
// are logged, reported to all listeners and skipped; adapter failures abort
// the pass.
func (a *API) UpdateParams(ctx context.Context, notify message.Scope) error {
	ctx, span := a.tracer.Start(ctx, "genart.UpdateParams",
		trace.WithAttributes(attribute.String("genart.notify", string(notify))))
	defer span.End()

	err := a.updateParams(ctx, notify)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (a *API) updateParams(ctx context.Context, notify message.Scope) error {
	ad := a.Adapter()
	if ad == nil {
		return nil
	}

	a.mu.Lock()
	ids := a.params.IDs()
	a.mu.Unlock()

	for _, id := range ids {
		a.mu.Lock()
		spec := a.params.Get(id).Clone()
		a.mu.Unlock()
		if spec == nil {
			continue
		}

		ov, err := ad.UpdateParam(ctx, id, spec)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeAdapterFailed, fmt.Sprintf("update param %q", id), err)
		}
		if ov == nil {
			continue
		}

		keys := make([]string, 0, len(ov.Update))
		for key := range ov.Update {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := a.setParamValue(id, ov.Update[key], key, message.ScopeNone, message.ScopeAll); err != nil {
				if apperrors.CodeOf(err).Fatal() {
					return err
				}
				a.log.Warn("override %s.%s skipped: %v", id, key, err)
			}
		}

		if ov.Value != nil || len(keys) > 0 {
			if err := a.setParamValue(id, ov.Value, "", notify, message.ScopeAll); err != nil {
				if apperrors.CodeOf(err).Fatal() {
					return err
				}
				a.log.Warn("override %s skipped: %v", id, err)
			}
		}
	}
	return nil
}

// SetParamValue validates and stores a value. With a key the nested param of
// that name is written instead. A nil value stores nothing but still
// notifies. Invalid values are returned and reported as param errors with
// the same scope.
func (a *API) SetParamValue(ctx context.Context, id string, value any, key string, notify message.Scope) error {
	_, span := a.tracer.Start(ctx, "genart.SetParamValue",
		trace.WithAttributes(
			attribute.String("genart.param.id", id),
			attribute.String("genart.param.key", key),
		))
	defer span.End()

	err := a.setParamValue(id, value, key, notify, notify)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// target resolves id and key to the param to write and its type. Callers
// hold a.mu.
func (a *API) target(id, key string) (top, p *param.Param, impl param.Impl, err error) {
	if err := param.ValidateID(id); err != nil {
		return nil, nil, nil, err
	}
	top = a.params.Get(id)
	if top == nil {
		return nil, nil, nil, apperrors.WithMetadata(apperrors.CodeParamUnknown,
			fmt.Sprintf("unknown param %q", id), map[string]string{"param": id})
	}
	p = top
	if key != "" {
		n, ok := top.Nested(key)
		if !ok {
			return nil, nil, nil, apperrors.WithMetadata(apperrors.CodeParamUnknown,
				fmt.Sprintf("param %q has no nested %q", id, key),
				map[string]string{"param": id, "key": key})
		}
		p = n
	}
	impl, err = a.types.Lookup(p.Type)
	if err != nil {
		return nil, nil, nil, err
	}
	return top, p, impl, nil
}

// setParamValue publishes the change with notify and a rejected value with
// errScope. Param errors name the param but never carry the value.
func (a *API) setParamValue(id string, value any, key string, notify, errScope message.Scope) error {
	a.mu.Lock()
	top, p, impl, err := a.target(id, key)
	if err != nil {
		a.mu.Unlock()
		return err
	}

	if value != nil {
		if !impl.Validate(p, value) {
			a.mu.Unlock()
			name := id
			if key != "" {
				name = id + "." + key
			}
			verr := apperrors.WithMetadata(apperrors.CodeParamValueInvalid,
				fmt.Sprintf("invalid value for param %q", name),
				map[string]string{"param": id, "key": key, "type": p.Type})
			a.log.Warn("%v: %v", verr, value)
			a.bus.Publish(message.Message{
				Type:    message.TypeParamError,
				ParamID: id,
				Key:     key,
				Info:    verr.Error(),
			}, errScope)
			return verr
		}
		p.Value = param.Coerce(impl, p, value)
		if key == "" {
			top.State = param.StateCustom
		}
	}

	snapshot := top.Clone()
	var current any
	if key == "" {
		current = snapshot.Current()
	} else {
		current = snapshot.Params[key].Current()
	}
	a.mu.Unlock()

	a.bus.Publish(message.Message{
		Type:    message.TypeParamChange,
		ParamID: id,
		Key:     key,
		Param:   snapshot,
		Value:   current,
	}, notify)
	return nil
}

// RandomizeParamValue writes a random value to a param and, when key names
// a randomizable nested param, to that nested param first. rnd defaults to
// the adapter's generator.
func (a *API) RandomizeParamValue(ctx context.Context, id, key string, rnd random.Source, notify message.Scope) error {
	_, span := a.tracer.Start(ctx, "genart.RandomizeParamValue",
		trace.WithAttributes(
			attribute.String("genart.param.id", id),
			attribute.String("genart.param.key", key),
		))
	defer span.End()

	err := a.randomizeParamValue(id, key, rnd, notify)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (a *API) randomizeParamValue(id, key string, rnd random.Source, notify message.Scope) error {
	if rnd == nil {
		rnd = a.Random()
	}

	a.mu.Lock()
	top, _, topImpl, err := a.target(id, "")
	if err != nil {
		a.mu.Unlock()
		return err
	}
	topRandom := param.CanRandomize(topImpl, top)
	nestedRandom := false
	if key != "" {
		_, n, impl, err := a.target(id, key)
		if err != nil {
			a.mu.Unlock()
			return err
		}
		nestedRandom = param.CanRandomize(impl, n)
	}
	a.mu.Unlock()

	if nestedRandom {
		scope := notify
		if topRandom {
			scope = message.ScopeNone
		}
		if err := a.setParamValue(id, a.draw(id, key, rnd), key, scope, notify); err != nil {
			return err
		}
	}
	if topRandom {
		return a.setParamValue(id, a.draw(id, "", rnd), "", notify, notify)
	}
	return nil
}

// draw randomizes the current spec of id or its nested key.
func (a *API) draw(id, key string, rnd random.Source) any {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, p, impl, err := a.target(id, key)
	if err != nil {
		return nil
	}
	r, ok := impl.(param.Randomizer)
	if !ok {
		return nil
	}
	return r.Randomize(p, rnd)
}

// GetParamValue returns the value of id at time t: the type's Read result
// when it has one, else the stored value falling back to the default.
func (a *API) GetParamValue(id string, t float64) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, p, impl, err := a.target(id, "")
	if err != nil {
		return nil, err
	}
	if r, ok := impl.(param.Reader); ok {
		return r.Read(p, t), nil
	}
	return p.Clone().Current(), nil
}

// RandomParamValue returns a random value for id without storing it. Types
// that cannot randomize report their value at time 0.
func (a *API) RandomParamValue(id string, rnd random.Source) (any, error) {
	if rnd == nil {
		rnd = a.Random()
	}
	a.mu.Lock()
	_, p, impl, err := a.target(id, "")
	if err != nil {
		a.mu.Unlock()
		return nil, err
	}
	if r, ok := impl.(param.Randomizer); ok {
		v := param.Coerce(impl, p, r.Randomize(p, rnd))
		a.mu.Unlock()
		return v, nil
	}
	a.mu.Unlock()
	return a.GetParamValue(id, 0)
}

// ParamSpecs returns a copy of the active set, or nil before the first
// successful SetParams.
func (a *API) ParamSpecs() *param.Set {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.params.Clone()
}
