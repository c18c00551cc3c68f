package game

import (
	"testing"

	"github.com/tomz197/shooter/internal/entity"
	"github.com/tomz197/shooter/internal/object"
)

func TestFireBullets(t *testing.T) {
	s := newQuietState(t)

	s.TryShoot(true, 0)
	if n := s.Bullets.Len(); n != 2 {
		t.Fatalf("got %d bullets, want 2", n)
	}
	if s.Player.Cooldown != object.BulletPeriod {
		t.Errorf("got cooldown %d, want %d", s.Player.Cooldown, object.BulletPeriod)
	}

	s.TryShoot(true, 0)
	if n := s.Bullets.Len(); n != 2 {
		t.Errorf("fired again during cooldown: %d bullets", n)
	}
	if s.ShotsBullet != 2 {
		t.Errorf("got %d shots, want 2", s.ShotsBullet)
	}
}

func TestFireFanGrowsWithPower(t *testing.T) {
	tests := []struct {
		power int
		want  int
	}{
		{0, 2},
		{16, 4},
		{40, 6},
	}
	for _, tt := range tests {
		s := newQuietState(t)
		s.Player.Power = tt.power
		s.TryShoot(true, 0)
		if n := s.Bullets.Len(); n != tt.want {
			t.Errorf("power %d: got %d bullets, want %d", tt.power, n, tt.want)
		}
		sum := 0.0
		for _, b := range s.Bullets.All() {
			sum += b.Velo.X
			if b.Velo.Y != -object.BulletSpeed {
				t.Errorf("power %d: bullet velocity %v", tt.power, b.Velo)
			}
		}
		if sum != 0 {
			t.Errorf("power %d: fan is lopsided, sideways sum %v", tt.power, sum)
		}
	}
}

func TestFireMissiles(t *testing.T) {
	s := newQuietState(t)
	s.Player.Weapon = object.WeaponMissile

	s.TryShoot(true, 0)

	if s.Bullets.Len() != 2 || s.ShotsMissile != 2 {
		t.Fatalf("got %d missiles (%d shots), want 2", s.Bullets.Len(), s.ShotsMissile)
	}
	for _, b := range s.Bullets.All() {
		if b.Kind != object.Missile || b.Health != object.MissileHealth {
			t.Errorf("got %v with health %d", b.Kind, b.Health)
		}
	}
	if s.Player.Cooldown != object.HeavyWeaponPeriod {
		t.Errorf("got cooldown %d, want %d", s.Player.Cooldown, object.HeavyWeaponPeriod)
	}
}

func TestNoFireWithoutTrigger(t *testing.T) {
	for _, w := range []object.Weapon{object.WeaponBullet, object.WeaponLight, object.WeaponMissile, object.WeaponLightning} {
		s := newQuietState(t)
		s.Time = 1
		s.Player.Weapon = w
		s.TryShoot(false, 5)
		if s.Bullets.Len() != 0 || len(s.Bolts) != 0 || s.Player.Cooldown != 0 {
			t.Errorf("%v fired without the trigger", w)
		}
	}
}

func TestBulletKillsEnemyPass(t *testing.T) {
	s := newQuietState(t)
	id := s.Enemies.Insert(object.NewEnemy(object.Enemy1, vec(100, 100), vec(0, 0)))
	s.Bullets.Insert(object.NewProjectile(object.Bullet, vec(100, 100), vec(0, -object.BulletSpeed)))

	s.AnimateBullets()

	if got := s.Enemies.Get(id).Health; got != object.Enemy1Health-1 {
		t.Errorf("enemy health %d, want %d", got, object.Enemy1Health-1)
	}
	if s.Bullets.Len() != 0 {
		t.Error("spent bullet kept")
	}
	if s.Effects.Len() != 1 {
		t.Errorf("got %d effects, want 1", s.Effects.Len())
	}
}

func TestBulletChipsBentCentipede(t *testing.T) {
	s := newQuietState(t)
	// An L: joints 0-3 run left from (200, 200), joints 4-7 run down from
	// (164, 200), leaving the box's lower right corner empty.
	e := object.NewEnemy(object.Centipede, vec(200, 200), vec(1, 0))
	for i := 4; i < len(e.Body.Joints); i++ {
		e.Body.Joints[i].Pos = vec(164, 200+12*float64(i-3))
	}
	id := s.Enemies.Insert(e)
	before := e.TotalHealth()

	s.Bullets.Insert(object.NewProjectile(object.Bullet, vec(200, 248), vec(0, -object.BulletSpeed)))
	s.AnimateBullets()

	got := s.Enemies.Get(id)
	if got == nil {
		t.Fatal("centipede removed by a chip")
	}
	if h := got.TotalHealth(); h != before-object.CentipedeChip {
		t.Errorf("total health %d, want %d", h, before-object.CentipedeChip)
	}
	if h := got.Body.Joints[0].Health; h != object.CentipedeJointHealth-object.CentipedeChip {
		t.Errorf("head health %d, want %d", h, object.CentipedeJointHealth-object.CentipedeChip)
	}
	if s.Bullets.Len() != 0 {
		t.Error("bullet passed through the centipede's body box")
	}
}

func TestBeam(t *testing.T) {
	s := newQuietState(t)
	s.Player.Weapon = object.WeaponLight
	s.Player.Power = 16
	above := s.Enemies.Insert(object.NewEnemy(object.Boss, vec(object.PlayerStartX+5, 50), vec(0, 0)))
	aside := s.Enemies.Insert(object.NewEnemy(object.Boss, vec(object.PlayerStartX+40, 50), vec(0, 0)))
	below := s.Enemies.Insert(object.NewEnemy(object.Boss, vec(object.PlayerStartX, object.PlayerStartY+40), vec(0, 0)))

	s.TryShoot(true, 0)
	s.TryShoot(true, 0)

	if got := s.Enemies.Get(above).Health; got != object.BossHealth-4 {
		t.Errorf("enemy in the beam: health %d, want %d", got, object.BossHealth-4)
	}
	if s.Enemies.Get(aside).Health != object.BossHealth || s.Enemies.Get(below).Health != object.BossHealth {
		t.Error("enemy outside the beam took damage")
	}
	if s.Effects.Len() != 2 {
		t.Errorf("got %d effects, want 2", s.Effects.Len())
	}
	if s.Player.Cooldown != 0 {
		t.Errorf("beam set cooldown %d", s.Player.Cooldown)
	}
}

func TestBeamSplitsCentipede(t *testing.T) {
	s := newQuietState(t)
	s.Player.Weapon = object.WeaponLight
	s.Player.Power = 16 * 3
	// Body lies along the x axis and crosses the beam at joint 3.
	c := object.NewEnemy(object.Centipede, vec(object.PlayerStartX+36, 100), vec(1, 0))
	s.Enemies.Insert(c)

	s.TryShoot(true, 0)

	if s.Enemies.Len() != 2 {
		t.Fatalf("got %d enemies, want 2", s.Enemies.Len())
	}
	joints := 0
	for _, e := range s.Enemies.All() {
		joints += len(e.Body.Joints)
	}
	if joints != object.CentipedeJoints-1 {
		t.Errorf("got %d joints, want %d", joints, object.CentipedeJoints-1)
	}
}

func TestMissilePredictedDamageSettles(t *testing.T) {
	type fate int
	const (
		hit fate = iota
		expire
		destroy
	)
	tests := []struct {
		name  string
		fates []fate
	}{
		{"all hit", []fate{hit, hit, hit}},
		{"all expire", []fate{expire, expire, expire, expire}},
		{"mixed", []fate{expire, hit, destroy, hit, expire}},
		{"single destroyed", []fate{destroy}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuietState(t)
			target := object.NewEnemy(object.Boss, vec(240, 100), vec(0, 0))
			eid := s.Enemies.Insert(target)
			var ids []entity.ID[object.Projectile]
			for range tt.fates {
				ids = append(ids, s.Bullets.Insert(
					object.NewProjectile(object.Missile, vec(240, 300), vec(0, -object.MissileSpeed))))
			}

			s.AnimateBullets()
			want := object.MissileDamage * len(tt.fates)
			if got := s.Enemies.Get(eid).PredictedDamage; got != want {
				t.Fatalf("after lock-on: predicted damage %d, want %d", got, want)
			}

			for i, f := range tt.fates {
				m := s.Bullets.Get(ids[i])
				switch f {
				case hit:
					m.Pos = s.Enemies.Get(eid).Pos
				case expire:
					m.Pos = vec(240, -100)
				case destroy:
					m.Health = 0
				}
				s.AnimateBullets()
				if s.Bullets.Contains(ids[i]) {
					t.Fatalf("missile %d survived", i)
				}
			}

			if s.Bullets.Len() != 0 {
				t.Errorf("%d missiles left", s.Bullets.Len())
			}
			if got := s.Enemies.Get(eid).PredictedDamage; got != 0 {
				t.Errorf("predicted damage leaked: %d", got)
			}
		})
	}
}
