package param

import (
	"fmt"
	"sort"

	apperrors "github.com/justyntemme/genart-go/pkg/framework/errors"
)

// Set is an ordered collection of parameter declarations keyed by ID.
// Iteration follows declaration order.
type Set struct {
	params map[string]*Param
	order  []string // Maintain declaration order
}

// NewSet creates a set holding the given params.
func NewSet(params ...*Param) (*Set, error) {
	s := &Set{params: make(map[string]*Param, len(params))}
	if err := s.Add(params...); err != nil {
		return nil, err
	}
	return s, nil
}

// Add appends params, rejecting illegal and duplicate IDs.
func (s *Set) Add(params ...*Param) error {
	if s.params == nil {
		s.params = make(map[string]*Param)
	}
	for _, p := range params {
		if p == nil {
			return apperrors.New(apperrors.CodeDeclarationInvalid, "nil param")
		}
		if err := ValidateID(p.ID); err != nil {
			return err
		}
		if _, exists := s.params[p.ID]; exists {
			return apperrors.New(apperrors.CodeDeclarationInvalid, fmt.Sprintf("duplicate param id %q", p.ID))
		}
		s.params[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return nil
}

// Put inserts or replaces a param, keeping the original position of an
// existing ID.
func (s *Set) Put(p *Param) error {
	if err := ValidateID(p.ID); err != nil {
		return err
	}
	if s.params == nil {
		s.params = make(map[string]*Param)
	}
	if _, exists := s.params[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.params[p.ID] = p
	return nil
}

// Get retrieves a param by ID.
func (s *Set) Get(id string) *Param {
	if s == nil {
		return nil
	}
	return s.params[id]
}

// Has reports whether id is declared.
func (s *Set) Has(id string) bool {
	return s.Get(id) != nil
}

// Len returns the number of params.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// IDs returns the IDs in declaration order.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// All returns all params in declaration order.
func (s *Set) All() []*Param {
	if s == nil {
		return nil
	}
	result := make([]*Param, len(s.order))
	for i, id := range s.order {
		result[i] = s.params[id]
	}
	return result
}

// Sorted returns params ordered by group, then order, then ID.
func (s *Set) Sorted() []*Param {
	result := s.All()
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})
	return result
}

// Clone deep copies the set.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	c := &Set{
		params: make(map[string]*Param, len(s.params)),
		order:  append([]string(nil), s.order...),
	}
	for id, p := range s.params {
		c.params[id] = p.Clone()
	}
	return c
}

// Flatten returns ID to cloned param, the shape broadcast to listeners.
func (s *Set) Flatten() map[string]*Param {
	if s == nil {
		return nil
	}
	out := make(map[string]*Param, len(s.params))
	for id, p := range s.params {
		out[id] = p.Clone()
	}
	return out
}

// SetBuilder provides fluent declaration of a whole set.
type SetBuilder struct {
	set    *Set
	errors []error
}

// NewSetBuilder creates a builder for fluent registration.
func NewSetBuilder() *SetBuilder {
	return &SetBuilder{set: &Set{params: make(map[string]*Param)}}
}

// Add builds and registers a param.
func (b *SetBuilder) Add(pb *Builder) *SetBuilder {
	p, err := pb.Build()
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	if err := b.set.Add(p); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// AddParam registers an already built param.
func (b *SetBuilder) AddParam(p *Param) *SetBuilder {
	if err := b.set.Add(p); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

// Build finalizes the set and returns the first error encountered.
func (b *SetBuilder) Build() (*Set, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	return b.set, nil
}
