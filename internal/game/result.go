package game

// Outcome is the round result from the player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeTie  Outcome = "tie"
)

// Result is the immutable outcome of one resolved round.
type Result struct {
	Player   Throw
	Opponent Throw
	Outcome  Outcome
}

// Message returns the player-facing summary line.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeWin:
		return "You win!"
	case OutcomeLose:
		return "You lose!"
	default:
		return "It's a tie!"
	}
}
