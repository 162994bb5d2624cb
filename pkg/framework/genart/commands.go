package genart

import (
	"context"

	"github.com/justyntemme/genart-go/pkg/framework/message"
)

// Info describes a running instance, answered to genart:get-info.
type Info struct {
	ID        string  `json:"id"`
	Version   string  `json:"version"`
	State     State   `json:"state"`
	Mode      RunMode `json:"mode,omitempty"`
	Seed      string  `json:"seed"`
	Screen    *Screen `json:"screen,omitempty"`
	Collector string  `json:"collector,omitempty"`
	Iteration int     `json:"iteration,omitempty"`
	Params    int     `json:"params"`
}

// Info returns a description of the instance.
func (a *API) Info() Info {
	info := Info{
		ID:      a.id,
		Version: Version,
		State:   a.State(),
		Seed:    a.PRNG().Seed(),
		Params:  a.ParamSpecs().Len(),
	}
	if ad := a.Adapter(); ad != nil {
		info.Mode = ad.Mode()
		screen := ad.Screen()
		info.Screen = &screen
		if c, ok := ad.(CollectorInfo); ok {
			info.Collector = c.Collector()
			info.Iteration = c.Iteration()
		}
	}
	return info
}

func (a *API) registerHandlers() {
	a.bus.Handle(message.TypeRandomizeParam, func(ctx context.Context, msg message.Message) error {
		return a.RandomizeParamValue(ctx, msg.ParamID, msg.Key, nil, a.notify)
	})
	a.bus.Handle(message.TypeSetParamValue, func(ctx context.Context, msg message.Message) error {
		return a.SetParamValue(ctx, msg.ParamID, msg.Value, msg.Key, a.notify)
	})
	a.bus.Handle(message.TypeStart, func(context.Context, message.Message) error {
		return a.Start()
	})
	a.bus.Handle(message.TypeStop, func(context.Context, message.Message) error {
		a.Stop()
		return nil
	})
	a.bus.Handle(message.TypeResume, func(context.Context, message.Message) error {
		return a.Resume()
	})
	a.bus.Handle(message.TypeGetInfo, func(context.Context, message.Message) error {
		a.bus.Publish(message.Message{Type: message.TypeInfo, Data: a.Info()}, a.notify)
		return nil
	})
}
