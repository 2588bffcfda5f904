package opponent

import (
	"context"

	"rps_arena/internal/game"
)

// FallbackStrategy generates the opponent move locally. It cannot fail, which
// is what lets the Client guarantee a move on every round.
type FallbackStrategy struct {
	rules *game.Registry
}

func NewFallbackStrategy(rules *game.Registry) *FallbackStrategy {
	return &FallbackStrategy{rules: rules}
}

func (s *FallbackStrategy) Fetch(ctx context.Context) (FetchResult, error) {
	return FetchResult{Throw: s.rules.RandomThrow(), Source: SourceFallback}, nil
}
