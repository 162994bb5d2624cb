package genart

import (
	"github.com/justyntemme/genart-go/pkg/random"
)

// Accessor reads values of the active set. It is returned by SetParams and
// stays valid across later declarations.
type Accessor struct {
	api *API
}

// Get returns the value of id at time 0, or nil if id is unknown.
func (acc *Accessor) Get(id string) any {
	return acc.At(id, 0)
}

// At returns the value of id at time t, or nil if id is unknown.
func (acc *Accessor) At(id string, t float64) any {
	v, err := acc.api.GetParamValue(id, t)
	if err != nil {
		acc.api.log.Debug("get %s: %v", id, err)
		return nil
	}
	return v
}

// Random returns an unsaved random value of id.
func (acc *Accessor) Random(id string, rnd random.Source) any {
	v, err := acc.api.RandomParamValue(id, rnd)
	if err != nil {
		acc.api.log.Debug("random %s: %v", id, err)
		return nil
	}
	return v
}

// Value returns the value of id as T. The second result is false when id
// is unknown or holds a different type.
func Value[T any](acc *Accessor, id string) (T, bool) {
	v, ok := acc.Get(id).(T)
	return v, ok
}
