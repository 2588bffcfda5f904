package service

import (
	"context"
	"errors"
	"testing"

	"rps_arena/internal/game"
	"rps_arena/internal/opponent"
)

// scriptedOpponent always plays the same throw and records calls.
type scriptedOpponent struct {
	throw  string
	source opponent.Source
	calls  int
}

func (o *scriptedOpponent) Fetch(ctx context.Context) opponent.FetchResult {
	o.calls++
	return opponent.FetchResult{Throw: o.throw, Source: o.source}
}

func newService(t *testing.T, opp *scriptedOpponent) *GameService {
	t.Helper()
	return NewGameService(game.MustRegistry(game.DefaultRules()), opp)
}

func TestPlayEndToEnd(t *testing.T) {
	cases := []struct {
		player, opponentThrow string
		outcome               string
		message               string
	}{
		{"paper", "rock", "win", "You win!"},
		{"rock", "paper", "lose", "You lose!"},
		{"scissors", "scissors", "tie", "It's a tie!"},
	}

	for _, tc := range cases {
		opp := &scriptedOpponent{throw: tc.opponentThrow, source: opponent.SourceRemote}
		res, err := newService(t, opp).Play(context.Background(), tc.player)
		if err != nil {
			t.Fatalf("Play(%s) failed: %v", tc.player, err)
		}
		if res.Outcome != tc.outcome || res.Message != tc.message {
			t.Fatalf("Play(%s) = %+v; want outcome %s message %q", tc.player, res, tc.outcome, tc.message)
		}
		if res.PlayerThrow != tc.player || res.OpponentThrow != tc.opponentThrow {
			t.Fatalf("Play(%s) throws = %s/%s; want %s/%s", tc.player, res.PlayerThrow, res.OpponentThrow, tc.player, tc.opponentThrow)
		}
		if res.UsedFallback {
			t.Fatalf("Play(%s) reported fallback for a remote move", tc.player)
		}
	}
}

func TestPlayNormalizesInput(t *testing.T) {
	opp := &scriptedOpponent{throw: "rock", source: opponent.SourceRemote}
	res, err := newService(t, opp).Play(context.Background(), "  PAPER ")
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if res.PlayerThrow != "paper" || res.Outcome != "win" {
		t.Fatalf("Play = %+v; want normalized paper win", res)
	}
}

func TestPlayReportsFallback(t *testing.T) {
	opp := &scriptedOpponent{throw: "rock", source: opponent.SourceFallback}
	res, err := newService(t, opp).Play(context.Background(), "paper")
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if !res.UsedFallback {
		t.Fatalf("expected used_fallback to be set")
	}
}

func TestPlayRejectsInvalidThrowBeforeFetch(t *testing.T) {
	opp := &scriptedOpponent{throw: "rock", source: opponent.SourceRemote}
	_, err := newService(t, opp).Play(context.Background(), "lizard")
	if !errors.Is(err, game.ErrInvalidThrow) {
		t.Fatalf("Play(lizard) error = %v; want ErrInvalidThrow", err)
	}
	if opp.calls != 0 {
		t.Fatalf("opponent fetched %d times for invalid input; want 0", opp.calls)
	}
}
