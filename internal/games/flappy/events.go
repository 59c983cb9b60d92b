package flappy

// Listener receives session notifications. Calls happen synchronously on the
// goroutine driving the session.
type Listener interface {
	// ScoreChanged is called each time the score goes up by one.
	ScoreChanged(score int)

	// GameStarted is called on every start or restart.
	GameStarted()

	// GameOver is called once per session, when it ends.
	GameOver(finalScore int)
}

// NopListener ignores all notifications.
type NopListener struct{}

func (NopListener) ScoreChanged(int) {}
func (NopListener) GameStarted()     {}
func (NopListener) GameOver(int)     {}

// Listeners fans notifications out to several listeners in order.
type Listeners []Listener

func (ls Listeners) ScoreChanged(score int) {
	for _, l := range ls {
		l.ScoreChanged(score)
	}
}

func (ls Listeners) GameStarted() {
	for _, l := range ls {
		l.GameStarted()
	}
}

func (ls Listeners) GameOver(finalScore int) {
	for _, l := range ls {
		l.GameOver(finalScore)
	}
}
