package game

// Action is a player intent reported by an input source.
type Action int

const (
	ActionRotateLeft Action = iota
	ActionRotateRight
	ActionThrust
	ActionFire
)

func (a Action) String() string {
	switch a {
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// KeyDown applies the start of an intent. A dead ship ignores input.
func (s *Session) KeyDown(a Action) {
	if s.Ship.Dead {
		return
	}
	switch a {
	case ActionRotateLeft:
		s.SetRotation(s.cfg.TurnRate())
	case ActionRotateRight:
		s.SetRotation(-s.cfg.TurnRate())
	case ActionThrust:
		s.SetThrusting(true)
	case ActionFire:
		s.RequestFire()
	}
}

// KeyUp applies the end of an intent. A dead ship ignores input.
func (s *Session) KeyUp(a Action) {
	if s.Ship.Dead {
		return
	}
	switch a {
	case ActionRotateLeft, ActionRotateRight:
		s.SetRotation(0)
	case ActionThrust:
		s.SetThrusting(false)
	case ActionFire:
		s.SetShootAllowed(true)
	}
}

// SetRotation sets the heading change applied each tick.
func (s *Session) SetRotation(rate float64) {
	s.Ship.Rotation = rate
}

// SetThrusting turns the engine on or off.
func (s *Session) SetThrusting(on bool) {
	s.Ship.Thrusting = on
}

// SetShootAllowed re-arms (or disarms) the trigger.
func (s *Session) SetShootAllowed(allowed bool) {
	s.Ship.ShootAllowed = allowed
}

// RequestFire asks for a laser on the next tick. The trigger must be
// released (SetShootAllowed(true)) before another request counts.
func (s *Session) RequestFire() {
	if s.Ship.ShootAllowed {
		s.fireRequested = true
	}
	s.Ship.ShootAllowed = false
}
