// Package message defines the envelope exchanged between a coordinator and
// the windows, editors and players around it.
package message

import (
	"fmt"

	"github.com/justyntemme/genart-go/pkg/framework/param"
)

// Type tags a message.
type Type string

// Outbound lifecycle messages.
const (
	TypeParams      Type = "genart:params"
	TypeParamChange Type = "genart:param-change"
	TypeParamError  Type = "genart:param-error"
	TypeStateChange Type = "genart:state-change"
	TypeInfo        Type = "genart:info"
)

// Inbound commands.
const (
	TypeRandomizeParam Type = "genart:randomize-param"
	TypeSetParamValue  Type = "genart:set-param-value"
	TypeStart          Type = "genart:start"
	TypeStop           Type = "genart:stop"
	TypeResume         Type = "genart:resume"
	TypeGetInfo        Type = "genart:get-info"
)

// Wildcard addresses every coordinator.
const Wildcard = "*"

// Message is the envelope for every broadcast and command. Fields that do
// not apply to a type are left empty.
type Message struct {
	Type    Type                    `json:"type"`
	APIID   string                  `json:"apiID,omitempty"`
	ParamID string                  `json:"paramID,omitempty"`
	Key     string                  `json:"key,omitempty"`
	Param   *param.Param            `json:"param,omitempty"`
	Params  map[string]*param.Param `json:"params,omitempty"`
	Value   any                     `json:"value,omitempty"`
	State   string                  `json:"state,omitempty"`
	Info    string                  `json:"info,omitempty"`
	Data    any                     `json:"data,omitempty"`
}

// Scope selects the destinations of a broadcast.
type Scope string

const (
	// ScopeNone sends nothing.
	ScopeNone Scope = "none"
	// ScopeSelf delivers to listeners in the same window only.
	ScopeSelf Scope = "self"
	// ScopeParent delivers to the parent endpoint only.
	ScopeParent Scope = "parent"
	// ScopeAll delivers to both.
	ScopeAll Scope = "all"
)

// ParseScope parses a scope name.
func ParseScope(s string) (Scope, error) {
	switch sc := Scope(s); sc {
	case ScopeNone, ScopeSelf, ScopeParent, ScopeAll:
		return sc, nil
	}
	return ScopeNone, fmt.Errorf("unknown notification scope %q", s)
}

func (s Scope) self() bool   { return s == ScopeSelf || s == ScopeAll }
func (s Scope) parent() bool { return s == ScopeParent || s == ScopeAll }
