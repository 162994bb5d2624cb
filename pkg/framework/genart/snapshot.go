package genart

import (
	"context"
	"io"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
	"github.com/justyntemme/genart-go/pkg/framework/state"
	"github.com/justyntemme/genart-go/pkg/framework/state/sqlitestore"
)

// VariationStore keeps named snapshots. *sqlitestore.Store implements it.
type VariationStore interface {
	Save(ctx context.Context, name, apiID string, snap *state.Snapshot) error
	Get(ctx context.Context, name string) (sqlitestore.Variation, error)
}

// Snapshot captures the current values and seed.
func (a *API) Snapshot() *state.Snapshot {
	return state.Capture(a.ParamSpecs(), a.PRNG().Seed())
}

// SaveState writes the current values to w.
func (a *API) SaveState(w io.Writer) error {
	return state.Save(w, a.Snapshot())
}

// LoadState reads values saved by SaveState and writes them through
// SetParamValue. Values that no longer validate are skipped, as are values
// that were defaults or random draws when saved.
func (a *API) LoadState(ctx context.Context, r io.Reader) error {
	snap, err := state.Load(r)
	if err != nil {
		return err
	}
	return a.Restore(ctx, snap)
}

// Restore applies a snapshot to the active set.
func (a *API) Restore(ctx context.Context, snap *state.Snapshot) error {
	assignments, err := snap.Resolve(a.ParamSpecs())
	if err != nil {
		return err
	}
	for _, as := range assignments {
		if !as.Custom() {
			continue
		}
		err := a.SetParamValue(ctx, as.ID, as.Value, as.Key, a.notify)
		if err == nil {
			continue
		}
		if apperrors.CodeOf(err) != apperrors.CodeParamValueInvalid {
			return err
		}
	}
	return nil
}

// SaveVariation stores the current values under name.
func (a *API) SaveVariation(ctx context.Context, store VariationStore, name string) error {
	return store.Save(ctx, name, a.id, a.Snapshot())
}

// LoadVariation restores the values stored under name.
func (a *API) LoadVariation(ctx context.Context, store VariationStore, name string) error {
	v, err := store.Get(ctx, name)
	if err != nil {
		return err
	}
	return a.Restore(ctx, v.Snapshot)
}
