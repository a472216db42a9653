package runner

import (
	"math"
	"testing"
)

const testFloorRest = 240.0

func TestRequestJumpSetsVelocity(t *testing.T) {
	p := Player{Y: testFloorRest}

	if !p.RequestJump(15) {
		t.Fatal("RequestJump() should start a jump from the ground")
	}
	if !p.Jumping {
		t.Error("player should be jumping")
	}
	if p.VelocityY != -15 {
		t.Errorf("VelocityY = %f, expected -15", p.VelocityY)
	}
}

func TestRequestJumpWhileAirborneIsNoop(t *testing.T) {
	p := Player{Y: testFloorRest}
	p.RequestJump(15)
	p = Integrate(p, testFloorRest, 0.8)

	before := p
	if p.RequestJump(15) {
		t.Error("second RequestJump() should report no jump")
	}
	if p != before {
		t.Errorf("second RequestJump() changed the player: %+v -> %+v", before, p)
	}
}

func TestIntegrateGroundedPlayerUnchanged(t *testing.T) {
	p := Player{X: 50, Y: testFloorRest, W: 64, H: 64}
	if got := Integrate(p, testFloorRest, 0.8); got != p {
		t.Errorf("grounded player should not move, got %+v", got)
	}
}

func TestIntegrateFirstTick(t *testing.T) {
	p := Player{Y: testFloorRest}
	p.RequestJump(15)
	p = Integrate(p, testFloorRest, 0.8)

	if p.Y != testFloorRest-15 {
		t.Errorf("Y after first tick = %f, expected %f", p.Y, testFloorRest-15)
	}
	if math.Abs(p.VelocityY-(-14.2)) > 1e-9 {
		t.Errorf("VelocityY after first tick = %f, expected -14.2", p.VelocityY)
	}
}

func TestJumpLandingTick(t *testing.T) {
	const (
		power   = 15.0
		gravity = 0.8
	)

	p := Player{Y: testFloorRest}
	p.RequestJump(power)

	ticks := 0
	for p.Jumping {
		p = Integrate(p, testFloorRest, gravity)
		ticks++
		if p.Y > testFloorRest {
			t.Fatalf("tick %d: Y = %f sank below the floor", ticks, p.Y)
		}
		if ticks > 1000 {
			t.Fatal("player never landed")
		}
	}

	closedForm := int(math.Ceil(2 * power / gravity))
	if diff := ticks - closedForm; diff < 0 || diff > 1 {
		t.Errorf("landed after %d ticks, closed form gives %d", ticks, closedForm)
	}
	if ticks != 39 {
		t.Errorf("landed after %d ticks, expected 39", ticks)
	}
	if p.Y != testFloorRest {
		t.Errorf("Y after landing = %f, expected exactly %f", p.Y, testFloorRest)
	}
}

func TestJumpResetsExactlyOnLandingTick(t *testing.T) {
	p := Player{Y: testFloorRest}
	p.RequestJump(15)

	for i := 1; i < 39; i++ {
		p = Integrate(p, testFloorRest, 0.8)
		if !p.Jumping {
			t.Fatalf("Jumping cleared early at tick %d", i)
		}
	}
	p = Integrate(p, testFloorRest, 0.8)
	if p.Jumping {
		t.Error("Jumping should clear on tick 39")
	}

	// A new jump is accepted right after landing
	if !p.RequestJump(15) {
		t.Error("RequestJump() should work again after landing")
	}
}
