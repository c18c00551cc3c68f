package object

import (
	"math"

	"github.com/tomz197/shooter/internal/physics"
)

// CentipedeTask is the movement a centipede is currently carrying out.
type CentipedeTask int

const (
	TaskStraight CentipedeTask = iota
	TaskTurnLeft
	TaskTurnRight
)

// Joint is one damageable body segment.
type Joint struct {
	Pos    physics.Vec2
	Health int
}

// CentipedeBody is the per-centipede state. Joint 0 is the head and always
// sits on the enemy's position.
type CentipedeBody struct {
	Joints    []Joint
	Task      CentipedeTask
	TaskTimer int
	Heading   float64
	Speed     float64
}

const jointHalf = CentipedeSize / 2

func newCentipedeBody(pos, velo physics.Vec2, n int) CentipedeBody {
	heading := velo.Angle()
	back := physics.FromAngle(heading, -CentipedeLinkLength)
	joints := make([]Joint, n)
	for i := range joints {
		joints[i] = Joint{Pos: pos.Add(back.Scale(float64(i))), Health: CentipedeJointHealth}
	}
	speed := velo.Len()
	if speed == 0 {
		speed = CentipedeSpeed
	}
	return CentipedeBody{Joints: joints, Heading: heading, Speed: speed}
}

func (b *CentipedeBody) health() int {
	total := 0
	for _, j := range b.Joints {
		total += j.Health
	}
	return total
}

// bounds returns the box covering every joint, or a regular enemy box around
// head when the body is empty.
func (b *CentipedeBody) bounds(head physics.Vec2) physics.Rect {
	if len(b.Joints) == 0 {
		return physics.Square(head, EnemySize)
	}
	r := physics.Square(b.Joints[0].Pos, jointHalf)
	for _, j := range b.Joints[1:] {
		jr := physics.Square(j.Pos, jointHalf)
		r.Min.X = math.Min(r.Min.X, jr.Min.X)
		r.Min.Y = math.Min(r.Min.Y, jr.Min.Y)
		r.Max.X = math.Max(r.Max.X, jr.Max.X)
		r.Max.Y = math.Max(r.Max.Y, jr.Max.Y)
	}
	return r
}

// jointAt returns the index of the first joint overlapping rect, or -1.
func (b *CentipedeBody) jointAt(rect physics.Rect) int {
	for i, j := range b.Joints {
		if physics.Square(j.Pos, jointHalf).Overlaps(rect) {
			return i
		}
	}
	return -1
}

// onScreen reports whether any joint still overlaps the playfield.
func (b *CentipedeBody) onScreen(field physics.Playfield) bool {
	screen := field.Rect()
	for _, j := range b.Joints {
		if physics.Square(j.Pos, jointHalf).Overlaps(screen) {
			return true
		}
	}
	return false
}

// follow drags each joint after the head toward its predecessor so no link
// is longer than CentipedeLinkLength.
func (b *CentipedeBody) follow(head physics.Vec2) {
	if len(b.Joints) == 0 {
		return
	}
	b.Joints[0].Pos = head
	for i := 1; i < len(b.Joints); i++ {
		prev := b.Joints[i-1].Pos
		d := b.Joints[i].Pos.Sub(prev)
		if d.LenSq() > CentipedeLinkLength*CentipedeLinkLength {
			b.Joints[i].Pos = prev.Add(d.Normalize().Scale(CentipedeLinkLength))
		}
	}
}

func (b *CentipedeBody) translate(d physics.Vec2) {
	for i := range b.Joints {
		b.Joints[i].Pos = b.Joints[i].Pos.Add(d)
	}
}

func (e *Enemy) animateCentipede(ctx *UpdateContext) DeathReason {
	if len(e.Body.Joints) == 0 {
		e.Health = 0
	}
	moved := e.Pos.Add(e.Velo)
	reason := e.Entity.Animate(ctx.Field)
	if reason == Killed {
		return Killed
	}

	b := &e.Body
	// A wrapped head carries the body across the edge with it.
	if shift := e.Pos.Sub(moved); shift != (physics.Vec2{}) {
		b.translate(shift)
	}
	if b.TaskTimer <= 0 {
		switch ctx.Rand.GenRange(0, 4) {
		case 0, 1:
			b.Task = TaskStraight
		case 2:
			b.Task = TaskTurnLeft
		default:
			b.Task = TaskTurnRight
		}
		b.TaskTimer = CentipedeTaskPeriod
	}
	b.TaskTimer--

	switch b.Task {
	case TaskTurnLeft:
		b.Heading -= CentipedeTurnRate
	case TaskTurnRight:
		b.Heading += CentipedeTurnRate
	}
	e.Velo = physics.FromAngle(b.Heading, b.Speed)
	e.Rotation = b.Heading

	b.follow(e.Pos)

	if ctx.Field.Boundary == physics.Wrap || b.onScreen(ctx.Field) {
		return Alive
	}
	return RangeOut
}

// damageCentipede damages the joint under rect, splitting the body when a
// joint is destroyed. With no joint under rect the head takes a chip.
func (e *Enemy) damageCentipede(amount int, rect physics.Rect, sp Spawner) {
	b := &e.Body
	if len(b.Joints) == 0 {
		e.Health = 0
		return
	}
	i := b.jointAt(rect)
	if i < 0 {
		i, amount = 0, CentipedeChip
	}
	b.Joints[i].Health -= amount
	if b.Joints[i].Health > 0 {
		return
	}
	if len(b.Joints) == 1 {
		e.Health = 0
		return
	}

	tail := b.Joints[i+1:]
	if len(tail) > 0 && sp != nil {
		sp.SpawnEnemy(e.severed(tail))
	}
	if i == 0 {
		// Head destroyed: the tail lives on as its own centipede.
		b.Joints = nil
		e.Health = 0
		return
	}
	b.Joints = b.Joints[:i:i]
}

// severed builds the centipede made of the given trailing joints. It turns
// 90 degrees off the parent's heading at the parent's speed.
func (e *Enemy) severed(tail []Joint) Enemy {
	heading := e.Body.Heading + math.Pi/2
	joints := make([]Joint, len(tail))
	copy(joints, tail)
	velo := physics.FromAngle(heading, e.Body.Speed)
	child := Enemy{
		Entity: NewEntity(joints[0].Pos, velo),
		Kind:   Centipede,
		Body: CentipedeBody{
			Joints:  joints,
			Task:    TaskStraight,
			Heading: heading,
			Speed:   e.Body.Speed,
		},
	}
	child.Rotation = heading
	return child
}
