package game

import (
	"errors"
	"fmt"
)

// ErrInvalidThrow is returned when a raw identifier is not in the registry.
var ErrInvalidThrow = errors.New("invalid throw")

// Throw is one participant's validated move. The zero value is not usable;
// construct through Registry.NewThrow.
type Throw struct {
	name  string
	rules *Registry
}

// NewThrow normalizes raw input and validates it against the registry.
func (r *Registry) NewThrow(raw string) (Throw, error) {
	name := normalize(raw)
	if _, ok := r.defeats[name]; !ok {
		return Throw{}, fmt.Errorf("%w: %q", ErrInvalidThrow, raw)
	}
	return Throw{name: name, rules: r}, nil
}

// Name returns the canonical throw name.
func (t Throw) Name() string {
	return t.name
}

func (t Throw) String() string {
	return t.name
}

// Beats reports whether t defeats other under t's registry.
func (t Throw) Beats(other Throw) bool {
	return t.rules.Defeats(t.name, other.name)
}

// Equal compares throws by canonical name.
func (t Throw) Equal(other Throw) bool {
	return t.name == other.name
}
