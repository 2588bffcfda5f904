package service

import (
	"context"

	"rps_arena/internal/game"
	"rps_arena/internal/opponent"
)

// OpponentClient is what GameService needs from the opponent layer.
type OpponentClient interface {
	Fetch(ctx context.Context) opponent.FetchResult
}

// GameService plays one round per call: validate the player's throw, obtain
// the opponent's, resolve. Stateless between calls; safe for concurrent use.
type GameService struct {
	rules     *game.Registry
	resolver  *game.Resolver
	opponents OpponentClient
}

func NewGameService(rules *game.Registry, opponents OpponentClient) *GameService {
	return &GameService{
		rules:     rules,
		resolver:  game.NewResolver(rules),
		opponents: opponents,
	}
}

// PlayResult is the rendered round outcome handed to the presentation layer.
type PlayResult struct {
	Outcome       string `json:"outcome"`
	PlayerThrow   string `json:"player_throw"`
	OpponentThrow string `json:"opponent_throw"`
	Message       string `json:"message"`
	UsedFallback  bool   `json:"used_fallback"`
}

// Play resolves one round for the given raw player throw. Invalid input is
// rejected before any network call is made.
func (s *GameService) Play(ctx context.Context, rawThrow string) (*PlayResult, error) {
	player, err := s.rules.NewThrow(rawThrow)
	if err != nil {
		return nil, err
	}

	opp := s.opponents.Fetch(ctx)

	result, err := s.resolver.Resolve(player.Name(), opp.Throw)
	if err != nil {
		// the client facade only returns registry-validated throws
		return nil, err
	}

	return &PlayResult{
		Outcome:       string(result.Outcome),
		PlayerThrow:   result.Player.Name(),
		OpponentThrow: result.Opponent.Name(),
		Message:       result.Message(),
		UsedFallback:  opp.Source == opponent.SourceFallback,
	}, nil
}

// Rules exposes the registry for info endpoints.
func (s *GameService) Rules() *game.Registry {
	return s.rules
}
