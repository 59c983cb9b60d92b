package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestAvatarReset(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)

	a.Y = 10
	a.Velocity = 4
	a.Reset()

	if a.Y != cfg.Playfield.Height/3 {
		t.Errorf("Reset should put Y at a third of the height, got %f", a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("Reset should zero velocity, got %f", a.Velocity)
	}
}

func TestAvatarGravity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)
	startY := a.Y

	if a.Update(true) {
		t.Fatal("one tick of gravity should not reach the ground")
	}
	if a.Velocity != cfg.Physics.Gravity {
		t.Errorf("velocity = %f, expected %f", a.Velocity, cfg.Physics.Gravity)
	}
	if a.Y != startY+cfg.Physics.Gravity {
		t.Errorf("Y = %f, expected %f", a.Y, startY+cfg.Physics.Gravity)
	}
}

func TestAvatarInactiveDoesNotMove(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	a.Velocity = 3
	before := a

	if a.Update(false) {
		t.Error("inactive update should never report ground contact")
	}
	if a != before {
		t.Errorf("inactive update changed the avatar: %+v -> %+v", before, a)
	}
}

func TestAvatarFlapOverwritesVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for _, v := range []float64{-12, -5, 0, 0.15, 9.5} {
		a := NewAvatar(cfg)
		a.Velocity = v
		a.Flap()
		if a.Velocity != cfg.Physics.FlapImpulse {
			t.Errorf("Flap from %f: velocity = %f, expected %f", v, a.Velocity, cfg.Physics.FlapImpulse)
		}
	}
}

func TestAvatarGroundClamp(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)
	a.Y = cfg.FloorLine() - a.Height/2 - 5
	a.Velocity = 10

	if !a.Update(true) {
		t.Fatal("avatar should report ground contact")
	}
	if a.Bottom() != cfg.FloorLine() {
		t.Errorf("bottom edge should be clamped to the floor line %f, got %f", cfg.FloorLine(), a.Bottom())
	}
}

func TestAvatarGroundContactIsInclusive(t *testing.T) {
	cfg := floatingConfig()
	a := NewAvatar(cfg)
	a.Y = cfg.FloorLine() - a.Height/2

	if !a.Update(true) {
		t.Error("bottom edge exactly on the floor line should count as ground contact")
	}
}

func TestAvatarCeilingStopsWithoutDeath(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)
	a.Y = a.Height/2 + 1
	a.Velocity = -5

	if a.Update(true) {
		t.Fatal("ceiling contact must not end the session")
	}
	if a.Y != a.Height/2 {
		t.Errorf("Y should be clamped to %f, got %f", a.Height/2, a.Y)
	}
	if a.Velocity != 0 {
		t.Errorf("ceiling contact should zero velocity, got %f", a.Velocity)
	}
}

func TestAvatarEdges(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	a.Y = 100

	if a.Left() != 33 || a.Right() != 67 {
		t.Errorf("horizontal extent = [%f, %f], expected [33, 67]", a.Left(), a.Right())
	}
	if a.Top() != 88 || a.Bottom() != 112 {
		t.Errorf("vertical extent = [%f, %f], expected [88, 112]", a.Top(), a.Bottom())
	}
}
