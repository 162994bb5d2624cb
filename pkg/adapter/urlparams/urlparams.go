// Package urlparams is a platform adapter that reads the seed, run mode,
// screen and param overrides from URL query parameters.
//
// A param is overridden by its ID (?size=4) and a nested param by ID and
// key joined with a dot (?fade.mode=smooth). Values use the string forms of
// param.Format.
package urlparams

import (
	"context"
	"math/big"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/justyntemme/genart-go/pkg/framework/debug"
	"github.com/justyntemme/genart-go/pkg/framework/genart"
	"github.com/justyntemme/genart-go/pkg/framework/param"
	"github.com/justyntemme/genart-go/pkg/random"
)

// Reserved query keys.
const (
	KeySeed      = "seed"
	KeyMode      = "mode"
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyDPR       = "dpr"
	KeyCollector = "collector"
	KeyIteration = "iteration"
)

// SeedParamID is the param the adapter adds to expose the seed.
const SeedParamID = "__seed"

var maxSeed = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Adapter implements genart.Adapter over a parsed query.
type Adapter struct {
	query  url.Values
	log    *debug.Logger
	mode   genart.RunMode
	screen genart.Screen
	prng   *random.SFC32

	mu       sync.Mutex
	traits   map[string]any
	captures int
}

// Parse creates an adapter from a raw query string such as "seed=ab&size=4".
func Parse(rawQuery string, log *debug.Logger) (*Adapter, error) {
	q, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return nil, err
	}
	return New(q, log)
}

// New creates an adapter from query values. A missing seed is generated.
func New(q url.Values, log *debug.Logger) (*Adapter, error) {
	if log == nil {
		log = debug.Default()
	}
	seed := q.Get(KeySeed)
	if seed == "" {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return nil, err
		}
	}
	prng, err := random.NewSFC32(seed)
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		query: q,
		log:   log.Named("urlparams"),
		mode:  genart.ModePlay,
		prng:  prng,
		screen: genart.Screen{
			Width:  queryInt(q, KeyWidth, 0),
			Height: queryInt(q, KeyHeight, 0),
			DPR:    1,
		},
	}
	switch m := genart.RunMode(q.Get(KeyMode)); m {
	case genart.ModePlay, genart.ModeEdit, genart.ModePreview:
		a.mode = m
	case "":
	default:
		a.log.Warn("unknown mode %q, using %s", m, genart.ModePlay)
	}
	if s := q.Get(KeyDPR); s != "" {
		if dpr, err := strconv.ParseFloat(s, 64); err == nil && dpr > 0 {
			a.screen.DPR = dpr
		}
	}
	return a, nil
}

func queryInt(q url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil {
		return fallback
	}
	return n
}

// Mode implements genart.Adapter.
func (a *Adapter) Mode() genart.RunMode { return a.mode }

// Screen implements genart.Adapter.
func (a *Adapter) Screen() genart.Screen { return a.screen }

// PRNG implements genart.Adapter.
func (a *Adapter) PRNG() random.PRNG { return a.prng }

// Collector implements genart.CollectorInfo.
func (a *Adapter) Collector() string { return a.query.Get(KeyCollector) }

// Iteration implements genart.CollectorInfo.
func (a *Adapter) Iteration() int { return queryInt(a.query, KeyIteration, 0) }

// AugmentParams adds the read-only seed param.
func (a *Adapter) AugmentParams(set *param.Set) *param.Set {
	if set.Has(SeedParamID) {
		return set
	}
	seed, _ := new(big.Int).SetString(a.prng.Seed(), 16)
	p, err := param.BigInt(SeedParamID, "Seed", big.NewInt(0), maxSeed).
		Edit(param.EditPrivate).
		Update(param.UpdateReload).
		Randomize(false).
		Default(seed).
		Build()
	if err != nil {
		a.log.Error("seed param: %v", err)
		return set
	}
	if err := set.Add(p); err != nil {
		a.log.Error("seed param: %v", err)
	}
	return set
}

// UpdateParam returns the query override for id. Values that do not parse
// are logged and ignored.
func (a *Adapter) UpdateParam(_ context.Context, id string, spec *param.Param) (*genart.Override, error) {
	if id == SeedParamID {
		return nil, nil
	}
	var ov genart.Override

	keys := make([]string, 0, len(spec.Params))
	for key := range spec.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		s, ok := a.lookup(id + "." + key)
		if !ok {
			continue
		}
		v, err := param.Parse(spec.Params[key], s)
		if err != nil {
			a.log.Warn("%v", err)
			continue
		}
		if ov.Update == nil {
			ov.Update = make(map[string]any)
		}
		ov.Update[key] = v
	}

	if s, ok := a.lookup(id); ok {
		v, err := param.Parse(spec, s)
		switch {
		case err != nil:
			a.log.Warn("%v", err)
		default:
			if nested, isMap := v.(map[string]any); isMap {
				if ov.Update == nil {
					ov.Update = make(map[string]any, len(nested))
				}
				for key, nv := range nested {
					ov.Update[key] = nv
				}
			} else {
				ov.Value = v
			}
		}
	}

	if ov.Value == nil && ov.Update == nil {
		return nil, nil
	}
	return &ov, nil
}

func (a *Adapter) lookup(key string) (string, bool) {
	vals, ok := a.query[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// SetTraits implements genart.TraitSetter.
func (a *Adapter) SetTraits(traits map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.traits = traits
}

// Traits returns the traits last set by the artwork.
func (a *Adapter) Traits() map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.traits
}

// Capture implements genart.Capturer. Browsers take the screenshot; here
// the request is only counted.
func (a *Adapter) Capture() {
	a.mu.Lock()
	a.captures++
	a.mu.Unlock()
	a.log.Info("capture requested")
}

// Captures returns how many captures were requested.
func (a *Adapter) Captures() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.captures
}

// Encode renders the current values of set as a query that reproduces
// them, seed included.
func (a *Adapter) Encode(set *param.Set) url.Values {
	q := url.Values{}
	q.Set(KeySeed, a.prng.Seed())
	for _, p := range set.All() {
		if p.ID == SeedParamID {
			continue
		}
		if p.Params != nil {
			for key, n := range p.Params {
				if v := n.Current(); v != nil {
					q.Set(p.ID+"."+key, param.Format(n, v))
				}
			}
			continue
		}
		if v := p.Current(); v != nil {
			q.Set(p.ID, param.Format(p, v))
		}
	}
	return q
}
