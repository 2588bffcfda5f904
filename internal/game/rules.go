package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// ThrowRule declares one throw and the throws it defeats.
type ThrowRule struct {
	Name    string   `json:"name"`
	Defeats []string `json:"defeats"`
	// Standard marks throws the remote opponent API knows about.
	// The random fallback generator only picks from these.
	Standard bool `json:"standard"`
}

// Registry is the authoritative defeat table. It is built once at startup,
// validated, and never mutated afterwards, so concurrent reads need no locking.
type Registry struct {
	order    []string
	defeats  map[string]map[string]bool
	standard []string
}

// DefaultRules returns the shipped rule set: classic rock/paper/scissors plus
// the extended hammer throw. Only the classic three are standard.
func DefaultRules() []ThrowRule {
	return []ThrowRule{
		{Name: "rock", Defeats: []string{"scissors"}, Standard: true},
		{Name: "paper", Defeats: []string{"rock", "hammer"}, Standard: true},
		{Name: "scissors", Defeats: []string{"paper"}, Standard: true},
		{Name: "hammer", Defeats: []string{"scissors", "rock"}},
	}
}

// NewRegistry builds and validates a registry from rule data. Adding a throw
// is a data change here, not a code change anywhere else.
func NewRegistry(rules []ThrowRule) (*Registry, error) {
	r := &Registry{
		defeats: make(map[string]map[string]bool, len(rules)),
	}

	for _, rule := range rules {
		name := normalize(rule.Name)
		if name == "" {
			return nil, fmt.Errorf("empty throw name in rules")
		}
		if _, ok := r.defeats[name]; ok {
			return nil, fmt.Errorf("duplicate throw %q in rules", name)
		}
		set := make(map[string]bool, len(rule.Defeats))
		for _, d := range rule.Defeats {
			set[normalize(d)] = true
		}
		r.defeats[name] = set
		r.order = append(r.order, name)
		if rule.Standard {
			r.standard = append(r.standard, name)
		}
	}

	if len(r.standard) == 0 {
		return nil, fmt.Errorf("rules declare no standard throws")
	}

	// Consistency checks: a broken table here would make the resolver
	// ambiguous at runtime, so refuse to start instead.
	for name, set := range r.defeats {
		if set[name] {
			return nil, fmt.Errorf("throw %q defeats itself", name)
		}
		for victim := range set {
			other, ok := r.defeats[victim]
			if !ok {
				return nil, fmt.Errorf("throw %q defeats unknown throw %q", name, victim)
			}
			if other[name] {
				return nil, fmt.Errorf("throws %q and %q defeat each other", name, victim)
			}
		}
	}

	return r, nil
}

// MustRegistry is NewRegistry that panics on invalid rule data. For use with
// compiled-in rule sets.
func MustRegistry(rules []ThrowRule) *Registry {
	r, err := NewRegistry(rules)
	if err != nil {
		panic(err)
	}
	return r
}

// AllThrows returns every registered throw name in declaration order.
func (r *Registry) AllThrows() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// StandardThrows returns the subset the remote API understands, in
// declaration order.
func (r *Registry) StandardThrows() []string {
	out := make([]string, len(r.standard))
	copy(out, r.standard)
	return out
}

// IsValid reports whether name (after normalization) is a registered throw.
func (r *Registry) IsValid(name string) bool {
	_, ok := r.defeats[normalize(name)]
	return ok
}

// Defeats reports whether throw a defeats throw b. Inputs are normalized.
func (r *Registry) Defeats(a, b string) bool {
	set, ok := r.defeats[normalize(a)]
	if !ok {
		return false
	}
	return set[normalize(b)]
}

// WhatDefeats returns the throws that name defeats, in declaration order.
// Unknown names yield an empty slice.
func (r *Registry) WhatDefeats(name string) []string {
	set, ok := r.defeats[normalize(name)]
	if !ok {
		return nil
	}
	var out []string
	for _, n := range r.order {
		if set[n] {
			out = append(out, n)
		}
	}
	return out
}

// RandomThrow picks a uniform random throw from the standard subset, so a
// locally generated move is indistinguishable from a real API response.
func (r *Registry) RandomThrow() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(r.standard))))
	if err != nil {
		// Fallback - should never happen
		n = big.NewInt(0)
	}
	return r.standard[n.Int64()]
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
