package runner

import "github.com/vovakirdan/cinnarun/internal/core"

// Player is the character running along the floor.
// X never changes; Y is the top edge and grows downward.
type Player struct {
	X, Y      float64
	W, H      float64
	VelocityY float64 // Negative is upward
	Jumping   bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// RequestJump starts a jump with the given initial upward speed.
// It is a no-op while the player is already airborne; there is no
// double jump and no queued jump. Reports whether a jump started.
func (p *Player) RequestJump(power float64) bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.VelocityY = -power
	return true
}

// Integrate advances an airborne player by one tick under gravity.
// The player lands, exactly at floorRest, on the first tick its top edge
// reaches or passes floorRest. Grounded players are returned unchanged.
func Integrate(p Player, floorRest, gravity float64) Player {
	if !p.Jumping {
		return p
	}
	p.Y += p.VelocityY
	p.VelocityY += gravity
	if p.Y >= floorRest {
		p.Y = floorRest
		p.Jumping = false
	}
	return p
}
