package loop

import (
	"math"

	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/game"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

func pt(v physics.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// drawFrameLines outlines the playfield and separates the status bar.
func drawFrameLines(c *draw.Canvas) {
	c.DrawRect(draw.Point{}, draw.Point{X: logicalWidth - 1, Y: logicalHeight - 1})
	c.DrawLine(draw.Point{X: object.Width}, draw.Point{X: object.Width, Y: logicalHeight})
}

// drawWorld draws every object of the simulation, bottom layer first.
func drawWorld(state *State, c *draw.Canvas) {
	g := state.Game
	for _, it := range g.Items.All() {
		drawItem(c, it)
	}
	for _, e := range g.Enemies.All() {
		drawEnemy(c, e)
	}
	for _, b := range g.Bullets.All() {
		drawProjectile(c, b)
	}
	for _, fx := range g.Effects.All() {
		drawEffect(c, fx)
	}
	drawWeapon(state, c)
	if !g.GameOver && (g.Player.InvTime == 0 || state.Frame%blinkPeriod < blinkPeriod/2) {
		drawPlayer(c, g.Player)
	}
}

// shape returns the polygon with the given vertices around center,
// rotated by angle.
func shape(center physics.Vec2, angle float64, vertices ...physics.Vec2) []draw.Point {
	pts := make([]draw.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = pt(center.Add(v.Rotate(angle)))
	}
	return pts
}

func drawPlayer(c *draw.Canvas, p *object.Player) {
	h := object.PlayerSize / 2
	c.DrawPolygon(shape(p.Pos, 0,
		physics.Vec2{Y: -h},
		physics.Vec2{X: h * 0.75, Y: h},
		physics.Vec2{Y: h / 2},
		physics.Vec2{X: -h * 0.75, Y: h},
	))
}

func drawRect(c *draw.Canvas, r physics.Rect) {
	c.DrawRect(pt(r.Min), pt(r.Max))
}

func drawEnemy(c *draw.Canvas, e *object.Enemy) {
	switch e.Kind {
	case object.Enemy1:
		drawRect(c, physics.Square(e.Pos, object.EnemySize))
	case object.Boss, object.ShieldedBoss:
		r := physics.Square(e.Pos, object.BossSize)
		drawRect(c, r)
		c.DrawLine(pt(r.Min), pt(r.Max))
		c.DrawLine(draw.Point{X: r.Min.X, Y: r.Max.Y}, draw.Point{X: r.Max.X, Y: r.Min.Y})
		if e.Kind == object.ShieldedBoss && e.Shield > 0 {
			drawRect(c, e.BoundingBox())
		}
	case object.SpiralEnemy:
		s := object.BossSize
		c.DrawPolygon(shape(e.Pos, e.Rotation,
			physics.Vec2{X: -s, Y: -s}, physics.Vec2{X: s, Y: -s},
			physics.Vec2{X: s, Y: s}, physics.Vec2{X: -s, Y: s}))
	case object.Centipede:
		for i, j := range e.Body.Joints {
			r := physics.Square(j.Pos, object.CentipedeSize/2)
			if i == 0 {
				c.FillRect(pt(r.Min), pt(r.Max))
			} else {
				drawRect(c, r)
			}
		}
	}
}

func drawProjectile(c *draw.Canvas, b *object.Projectile) {
	switch b.Kind {
	case object.Bullet:
		c.DrawLine(pt(b.Pos), pt(b.Pos.Sub(b.Velo)))
	case object.Missile:
		for i := 1; i < len(b.Trail); i++ {
			c.DrawLine(pt(b.Trail[i-1]), pt(b.Trail[i]))
		}
		c.DrawPolygon(shape(b.Pos, b.Rotation,
			physics.Vec2{Y: -4}, physics.Vec2{X: 2, Y: 3}, physics.Vec2{X: -2, Y: 3}))
	default:
		r := physics.Square(b.Pos, 2)
		c.FillRect(pt(r.Min), pt(r.Max))
	}
}

func drawItem(c *draw.Canvas, it *object.Item) {
	s := it.Size()
	c.DrawPolygon(shape(it.Pos, 0,
		physics.Vec2{Y: -s}, physics.Vec2{X: s}, physics.Vec2{Y: s}, physics.Vec2{X: -s}))
}

// drawEffect draws an explosion as a ring that grows with its frame.
func drawEffect(c *draw.Canvas, fx *object.TempEntity) {
	r := fx.Size() * float64(fx.Frame()+1) / float64(fx.MaxFrames)
	const sides = 8
	pts := make([]physics.Vec2, sides)
	for i := range pts {
		pts[i] = physics.FromAngle(2*math.Pi*float64(i)/sides, r)
	}
	c.DrawPolygon(shape(fx.Pos, fx.Rotation, pts...))
}

// drawWeapon draws the beam and lightning fired this frame.
func drawWeapon(state *State, c *draw.Canvas) {
	g := state.Game
	if g.Player.Weapon == object.WeaponLight && state.Input.Fire && !g.GameOver && !g.Paused {
		r := g.BeamRect()
		c.DrawLine(draw.Point{X: r.Min.X, Y: r.Min.Y}, draw.Point{X: r.Min.X, Y: r.Max.Y})
		c.DrawLine(draw.Point{X: r.Max.X, Y: r.Min.Y}, draw.Point{X: r.Max.X, Y: r.Max.Y})
	}
	for _, b := range g.Bolts {
		b.Replay(func(seg game.Segment) bool {
			c.DrawLine(pt(seg.From), pt(seg.To))
			return true
		})
	}
}
