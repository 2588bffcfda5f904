package game

// Resolver computes round results against a fixed registry. Pure: no I/O,
// no retries, the only failure mode is an unregistered input throw.
type Resolver struct {
	rules *Registry
}

func NewResolver(rules *Registry) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve coerces both raw identifiers into throws and decides the outcome
// from the player's perspective. Invalid input propagates to the caller.
func (r *Resolver) Resolve(playerRaw, opponentRaw string) (Result, error) {
	player, err := r.rules.NewThrow(playerRaw)
	if err != nil {
		return Result{}, err
	}
	opponent, err := r.rules.NewThrow(opponentRaw)
	if err != nil {
		return Result{}, err
	}

	outcome := OutcomeLose
	if player.Equal(opponent) {
		outcome = OutcomeTie
	} else if player.Beats(opponent) {
		outcome = OutcomeWin
	}

	return Result{Player: player, Opponent: opponent, Outcome: outcome}, nil
}
