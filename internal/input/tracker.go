package input

import "github.com/tomz197/asteroids-classic/internal/game"

// Intent is the start (Down) or end of a player action.
type Intent struct {
	Action game.Action
	Down   bool
}

// Tracker derives key-down and key-up edges from successive held-key
// snapshots.
type Tracker struct {
	prev    Input
	intents []Intent
}

// Update compares in with the previous snapshot and returns the edges.
// Releases come before presses so a rotate key-up cannot cancel a rotation
// started in the same frame. The returned slice is reused by the next call.
func (t *Tracker) Update(in Input) []Intent {
	t.intents = t.intents[:0]

	held := [...]struct {
		action  game.Action
		was, is bool
	}{
		{game.ActionRotateLeft, t.prev.Left, in.Left},
		{game.ActionRotateRight, t.prev.Right, in.Right},
		{game.ActionThrust, t.prev.Thrust, in.Thrust},
		{game.ActionFire, t.prev.Fire, in.Fire},
	}

	for _, h := range held {
		if h.was && !h.is {
			t.intents = append(t.intents, Intent{Action: h.action})
		}
	}
	for _, h := range held {
		if !h.was && h.is {
			t.intents = append(t.intents, Intent{Action: h.action, Down: true})
		}
	}

	t.prev = in
	return t.intents
}
