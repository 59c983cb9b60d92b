package flappy

// autopilotSlack keeps the avatar's lower edge this far above the bottom
// segment when deciding to flap.
const autopilotSlack = 10

// Autopilot decides whether to flap this tick. It aims at the gap of the
// next obstacle, or the middle of the sky when none is ahead, and flaps when
// the next position would sink below the target line.
func Autopilot(s *Session) bool {
	if !s.Running() {
		return false
	}

	a := s.Avatar()
	target := s.cfg.FloorLine() * 0.6
	if o, ok := s.field.Next(a); ok {
		target = o.GapBottom() - autopilotSlack
	}

	return a.Bottom()+a.Velocity+a.gravity >= target
}
