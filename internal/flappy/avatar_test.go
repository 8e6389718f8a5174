package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestAvatarFallsToDeath(t *testing.T) {
	// y(n) = 210 + 0.25*n(n+1)/2; the 24-unit box crosses 420 on update 39.
	a := NewAvatar(config.DefaultFlappyConfig())

	ticks := 0
	for !a.Dead() {
		a.Update()
		ticks++
		if ticks > 1000 {
			t.Fatal("avatar never died")
		}
	}

	if ticks != 39 {
		t.Errorf("avatar died after %d ticks, expected 39", ticks)
	}
	if a.Box().Bottom() != 420 {
		t.Errorf("dead avatar should rest on the floor, bottom = %v", a.Box().Bottom())
	}
}

func TestAvatarFallIsReproducible(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0.4

	count := func() int {
		a := NewAvatar(cfg)
		n := 0
		for !a.Dead() {
			a.Update()
			n++
		}
		return n
	}

	first := count()
	for i := 0; i < 5; i++ {
		if got := count(); got != first {
			t.Fatalf("run %d died after %d ticks, first run after %d", i, got, first)
		}
	}
}

func TestAvatarJumpResetsSpeed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAvatar(cfg)

	a.Jump()
	a.Jump()
	if a.Speed() != cfg.Physics.JumpSpeed {
		t.Errorf("double jump speed = %v, expected %v", a.Speed(), cfg.Physics.JumpSpeed)
	}

	// Jumps on consecutive ticks
	a.Update()
	a.Jump()
	if a.Speed() != cfg.Physics.JumpSpeed {
		t.Errorf("speed after consecutive jumps = %v, expected %v", a.Speed(), cfg.Physics.JumpSpeed)
	}
}

func TestAvatarJumpMovesUp(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	initialY := a.Box().Y

	a.Jump()
	a.Update()

	if a.Box().Y >= initialY {
		t.Errorf("jump should move avatar up, was %v, now %v", initialY, a.Box().Y)
	}
	if a.Speed() != -4.25 {
		t.Errorf("speed after jump and one update = %v, expected -4.25", a.Speed())
	}
}

func TestAvatarCeilingClampsWithoutDeath(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	a.box.Y = 2

	a.Jump()
	a.Update()

	if a.Box().Y != 0 {
		t.Errorf("avatar should be clamped to the ceiling, y = %v", a.Box().Y)
	}
	if a.Dead() {
		t.Error("hitting the ceiling must not kill the avatar")
	}
}

func TestAvatarDeathIsSticky(t *testing.T) {
	a := NewAvatar(config.DefaultFlappyConfig())
	for !a.Dead() {
		a.Update()
	}

	a.Jump()
	a.Update()
	if !a.Dead() {
		t.Error("dead flag should only be cleared by Reset")
	}

	a.Reset()
	if a.Dead() || a.Speed() != 0 || a.Box().Y != 210 {
		t.Errorf("Reset should restore the start state, got box=%+v speed=%v dead=%v", a.Box(), a.Speed(), a.Dead())
	}
}
