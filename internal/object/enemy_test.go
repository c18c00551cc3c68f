package object

import (
	"math"
	"testing"

	"github.com/tomz197/shooter/internal/physics"
)

func TestShieldedBossDamage(t *testing.T) {
	e := NewEnemy(ShieldedBoss, vec(100, 100), vec(0, 0))
	hit := e.BoundingBox()

	for e.Shield >= ShieldLeakBelow {
		before := e.Shield
		e.Damage(10, hit, nil)
		if e.Health != BossHealth {
			t.Fatalf("health %d changed while shield was %d", e.Health, before)
		}
		if e.Shield != before-10 {
			t.Fatalf("shield %d -> %d, want %d", before, e.Shield, before-10)
		}
	}

	shield := e.Shield
	e.Damage(10, hit, nil)
	if e.Shield != shield {
		t.Errorf("shield changed below threshold: %d -> %d", shield, e.Shield)
	}
	if e.Health != BossHealth-10 {
		t.Errorf("got health %d, want %d", e.Health, BossHealth-10)
	}
}

func TestShieldNeverNegative(t *testing.T) {
	e := NewEnemy(ShieldedBoss, vec(100, 100), vec(0, 0))
	e.Shield = 20
	e.Damage(50, e.BoundingBox(), nil)
	if e.Shield != 0 {
		t.Errorf("got shield %d, want 0", e.Shield)
	}
	if e.Health != BossHealth {
		t.Errorf("got health %d, want %d", e.Health, BossHealth)
	}
}

func TestShieldRegenerates(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"below cap", 10, 10 + 64/ShieldRegenPeriod},
		{"capped", ShieldMax - 1, ShieldMax},
		{"full", ShieldMax, ShieldMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newContext()
			e := NewEnemy(ShieldedBoss, vec(100, 100), vec(0, 0))
			e.Shield = tt.start
			for i := range uint32(64) {
				ctx.Time = i
				if reason := e.Animate(ctx); reason != Alive {
					t.Fatalf("frame %d: boss died with %v", i, reason)
				}
			}
			if e.Shield != tt.want {
				t.Errorf("got shield %d, want %d", e.Shield, tt.want)
			}
		})
	}
}

func TestShieldedBossHitboxShrinks(t *testing.T) {
	e := NewEnemy(ShieldedBoss, vec(100, 100), vec(0, 0))
	if w := e.BoundingBox().Max.X - e.BoundingBox().Min.X; w != 2*ShieldMax {
		t.Errorf("full shield width %v, want %v", w, 2*ShieldMax)
	}
	e.Shield = 0
	if w := e.BoundingBox().Max.X - e.BoundingBox().Min.X; w != 2*EnemySize {
		t.Errorf("empty shield width %v, want %v", w, 2*EnemySize)
	}
}

// newCentipede lays a centipede along the x axis with its head at x=100,
// so joint i sits at x = 100 - 12*i.
func newCentipede() Enemy {
	return NewEnemy(Centipede, vec(100, 100), vec(1, 0))
}

func jointRect(e *Enemy, i int) physics.Rect {
	return physics.Square(e.Body.Joints[i].Pos, 1)
}

func TestCentipedeSplit(t *testing.T) {
	e := newCentipede()
	if e.TotalHealth() != CentipedeJoints*CentipedeJointHealth {
		t.Fatalf("got total health %d, want %d", e.TotalHealth(), CentipedeJoints*CentipedeJointHealth)
	}
	rec := &spawnRecorder{}

	e.Damage(CentipedeJointHealth, jointRect(&e, 3), rec)

	if len(rec.enemies) != 1 {
		t.Fatalf("got %d spawned enemies, want 1", len(rec.enemies))
	}
	child := rec.enemies[0]
	if child.Kind != Centipede {
		t.Errorf("child kind %v, want %v", child.Kind, Centipede)
	}
	if n := len(child.Body.Joints); n != CentipedeJoints-4 {
		t.Errorf("child has %d joints, want %d", n, CentipedeJoints-4)
	}
	if n := len(e.Body.Joints); n != 3 {
		t.Errorf("parent has %d joints, want 3", n)
	}
	if e.Health <= 0 {
		t.Error("parent died")
	}
	if !near(child.Velo.X, 0) || !near(child.Velo.Y, 1) {
		t.Errorf("child velocity %v, want parent heading turned 90 degrees", child.Velo)
	}
	if !near(child.Body.Heading, math.Pi/2) {
		t.Errorf("child heading %v, want pi/2", child.Body.Heading)
	}

	// The child owns its joints.
	child.Body.Joints[0].Health = 99
	if e.Body.Joints[2].Health == 99 {
		t.Error("child shares joint storage with parent")
	}
}

func TestCentipedeSoleJointDies(t *testing.T) {
	e := newCentipede()
	e.Body.Joints = e.Body.Joints[:1]
	rec := &spawnRecorder{}

	e.Damage(CentipedeJointHealth, jointRect(&e, 0), rec)

	if len(rec.enemies) != 0 {
		t.Errorf("got %d spawned enemies, want 0", len(rec.enemies))
	}
	if e.Health > 0 {
		t.Errorf("got health %d, want dead", e.Health)
	}
}

func TestCentipedeHeadDestroyed(t *testing.T) {
	e := newCentipede()
	rec := &spawnRecorder{}

	e.Damage(CentipedeJointHealth, jointRect(&e, 0), rec)

	if len(rec.enemies) != 1 || len(rec.enemies[0].Body.Joints) != CentipedeJoints-1 {
		t.Fatalf("want one tail of %d joints, got %+v", CentipedeJoints-1, rec.enemies)
	}
	if e.Health > 0 {
		t.Errorf("headless parent still alive with health %d", e.Health)
	}
}

func TestCentipedePartialDamage(t *testing.T) {
	e := newCentipede()
	rec := &spawnRecorder{}

	e.Damage(1, jointRect(&e, 5), rec)

	if got := e.Body.Joints[5].Health; got != CentipedeJointHealth-1 {
		t.Errorf("joint 5 health %d, want %d", got, CentipedeJointHealth-1)
	}
	if len(rec.enemies) != 0 || len(e.Body.Joints) != CentipedeJoints {
		t.Error("partial damage split the body")
	}
}

func TestCentipedeChip(t *testing.T) {
	e := newCentipede()
	e.Damage(3, physics.Square(vec(400, 400), 1), nil)
	if got := e.Body.Joints[0].Health; got != CentipedeJointHealth-CentipedeChip {
		t.Errorf("head health %d, want %d", got, CentipedeJointHealth-CentipedeChip)
	}
}

func TestCentipedeFollow(t *testing.T) {
	ctx, _ := newContext()
	e := NewEnemy(Centipede, vec(240, 240), vec(1, 0))
	for range 200 {
		if e.Animate(ctx) != Alive {
			t.Fatal("centipede left the field early")
		}
		for i := 1; i < len(e.Body.Joints); i++ {
			d := e.Body.Joints[i].Pos.Sub(e.Body.Joints[i-1].Pos).Len()
			if d > CentipedeLinkLength+1e-9 {
				t.Fatalf("link %d stretched to %v", i, d)
			}
		}
	}
}

func TestCentipedeWrapKeepsBodyBehind(t *testing.T) {
	ctx, _ := newContext()
	ctx.Field.Boundary = physics.Wrap
	e := NewEnemy(Centipede, vec(Width-0.5, 240), vec(1, 0))

	if reason := e.Animate(ctx); reason != Alive {
		t.Fatalf("got %v, want alive", reason)
	}
	head := e.Body.Joints[0].Pos
	if math.Abs(head.X-0.5) > 1e-6 {
		t.Fatalf("head at %v, want wrapped to x=0.5", head)
	}
	for i := 1; i < len(e.Body.Joints); i++ {
		want := 0.5 - CentipedeLinkLength*float64(i)
		if got := e.Body.Joints[i].Pos.X; math.Abs(got-want) > 1e-6 {
			t.Errorf("joint %d at x=%v, want %v", i, got, want)
		}
	}

	for range 100 {
		if reason := e.Animate(ctx); reason != Alive {
			t.Fatalf("got %v, want alive", reason)
		}
		for i := 1; i < len(e.Body.Joints); i++ {
			d := e.Body.Joints[i].Pos.Sub(e.Body.Joints[i-1].Pos).Len()
			if d > CentipedeLinkLength+1e-9 {
				t.Fatalf("link %d stretched to %v", i, d)
			}
		}
	}
}

func TestEnemyDrops(t *testing.T) {
	tests := []struct {
		kind  EnemyKind
		item  ItemKind
		score int
	}{
		{Enemy1, PowerUp, ScoreEnemy},
		{Boss, PowerUp10, ScoreBoss},
		{ShieldedBoss, PowerUp10, ScoreBoss},
		{SpiralEnemy, PowerUp10, ScoreEnemy},
		{Centipede, PowerUp10, ScoreEnemy},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := NewEnemy(tt.kind, vec(50, 60), vec(1, 0))
			if got := e.DropItem(0).Kind; got != tt.item {
				t.Errorf("DropItem() kind = %v, want %v", got, tt.item)
			}
			if got := e.Score(); got != tt.score {
				t.Errorf("Score() = %d, want %d", got, tt.score)
			}
		})
	}
}

func TestParseEnemyKind(t *testing.T) {
	for k := EnemyKind(0); k < EnemyKindCount; k++ {
		got, err := ParseEnemyKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseEnemyKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseEnemyKind("dragon"); err == nil {
		t.Error("ParseEnemyKind accepted an unknown kind")
	}
}
