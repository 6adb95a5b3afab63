// Package chase implements Square Chase: the player steers a square around a
// wrapping field while enemy squares spawn over time and chase it.
package chase

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
)

// Body is a colored square moving with a constant velocity between updates.
type Body struct {
	Box   core.Rect
	Color core.Color
	Vel   core.Vec
}

// Move translates the body by its velocity and wraps it around the field.
func (b *Body) Move(fieldW, fieldH int) {
	b.Box = core.Wrap(b.Box.Translate(b.Vel), fieldW, fieldH)
}

// directionRule maps one directional action to a unit vector.
type directionRule struct {
	action core.Action
	dir    core.Vec
}

// directionRules are checked in order and the last pressed one wins,
// so down beats up, up beats right, and right beats left.
var directionRules = []directionRule{
	{core.ActionLeft, core.Vec{X: -1}},
	{core.ActionRight, core.Vec{X: 1}},
	{core.ActionUp, core.Vec{Y: -1}},
	{core.ActionDown, core.Vec{Y: 1}},
}

// Player is the square steered by input.
type Player struct {
	Body
	Speed int
}

// NewPlayer creates the player at its start position, moving right.
func NewPlayer(cfg config.ChasePlayer, c core.Color) *Player {
	return &Player{
		Body: Body{
			Box:   core.Square(cfg.StartX, cfg.StartY, cfg.Size),
			Color: c,
			Vel:   core.Vec{X: cfg.Speed},
		},
		Speed: cfg.Speed,
	}
}

// Steer overwrites the velocity from the pressed directions.
// With no direction pressed the previous velocity is kept.
func (p *Player) Steer(in core.InputFrame) {
	for _, r := range directionRules {
		if in.Has(r.action) {
			p.Vel = core.Vec{X: r.dir.X * p.Speed, Y: r.dir.Y * p.Speed}
		}
	}
}

// Update steers and then moves the player.
func (p *Player) Update(in core.InputFrame, fieldW, fieldH int) {
	p.Steer(in)
	p.Move(fieldW, fieldH)
}

// Enemy chases the player along one axis at a time, re-deciding its
// direction at a fixed per-enemy interval.
type Enemy struct {
	Body
	Speed        int
	Interval     time.Duration
	LastDecision time.Duration
}

// NewEnemy creates a stationary enemy with a speed and decision interval
// drawn from the configured ranges. now is the creation time.
func NewEnemy(x, y int, cfg config.ChaseEnemy, rng *rand.Rand, now time.Duration) *Enemy {
	speed := cfg.MinSpeed + rng.Intn(cfg.MaxSpeed-cfg.MinSpeed+1)
	spanMs := int((cfg.MaxDecision() - cfg.MinDecision()) / time.Millisecond)
	interval := cfg.MinDecision() + time.Duration(rng.Intn(spanMs+1))*time.Millisecond
	return &Enemy{
		Body: Body{
			Box:   core.Square(x, y, cfg.Size),
			Color: core.ColorOrange,
		},
		Speed:        speed,
		Interval:     interval,
		LastDecision: now,
	}
}

// Chase recomputes the velocity toward target once the decision interval
// has elapsed. The dominant axis wins; ties go vertical, and an enemy level
// with its target keeps moving down.
func (e *Enemy) Chase(target core.Vec, now time.Duration) {
	if now-e.LastDecision < e.Interval {
		return
	}
	dx := target.X - e.Box.X
	dy := target.Y - e.Box.Y
	if core.Abs(dx) > core.Abs(dy) {
		e.Vel = core.Vec{X: core.Sign(dx) * e.Speed}
	} else {
		e.Vel = core.Vec{Y: e.Speed}
		if dy < 0 {
			e.Vel.Y = -e.Speed
		}
	}
	e.LastDecision = now
}

// Update chases target and moves the enemy.
func (e *Enemy) Update(target core.Vec, now time.Duration, fieldW, fieldH int) {
	e.Chase(target, now)
	e.Move(fieldW, fieldH)
}
