//go:generate mockgen -package $GOPACKAGE -source $GOFILE -destination adapter_mock.go

package genart

import (
	"context"

	"github.com/justyntemme/genart-go/pkg/framework/param"
	"github.com/justyntemme/genart-go/pkg/random"
)

// RunMode tells the artwork what context it is shown in.
type RunMode string

const (
	ModePlay    RunMode = "play"
	ModeEdit    RunMode = "edit"
	ModePreview RunMode = "preview"
)

// Screen describes the render target.
type Screen struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	DPR    float64 `json:"dpr"`
}

// Override is an adapter supplied change for one param. Update maps nested
// keys to values and is applied before Value.
type Override struct {
	Value  any
	Update map[string]any
}

// Adapter connects the coordinator to a hosting platform.
type Adapter interface {
	Mode() RunMode
	Screen() Screen
	PRNG() random.PRNG
	// UpdateParam returns the platform's override for a param, or nil.
	UpdateParam(ctx context.Context, id string, spec *param.Param) (*Override, error)
}

// ParamAugmenter adapters inject platform params into a declaration.
type ParamAugmenter interface {
	AugmentParams(set *param.Set) *param.Set
}

// ParamInitializer adapters prepare for a resolved declaration before the
// first override pass.
type ParamInitializer interface {
	InitParams(ctx context.Context, set *param.Set) error
}

// TraitSetter adapters accept artwork traits.
type TraitSetter interface {
	SetTraits(traits map[string]any)
}

// Capturer adapters take a preview capture.
type Capturer interface {
	Capture()
}

// CollectorInfo adapters know who owns the edition.
type CollectorInfo interface {
	Collector() string
	Iteration() int
}
