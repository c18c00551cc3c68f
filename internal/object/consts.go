package object

import "math"

// Playfield and window, in playfield units.
const (
	WindowWidth  = 640
	WindowHeight = 480
	Width        = WindowWidth * 3 / 4 // right quarter is the status bar
	Height       = WindowHeight
)

// Player
const (
	PlayerSpeed          = 2.0
	PlayerSize           = 16.0
	PlayerInvincibleTime = 128
	PlayerLives          = 3
	PlayerStartX         = 240.0
	PlayerStartY         = 400.0
)

// Half extents used by the bounding-box tests.
const (
	EnemySize     = 8.0
	BossSize      = 16.0
	CentipedeSize = 16.0
	BulletSize    = 8.0
	ItemSize      = 6.0
	Item2Size     = 12.0
	ExplodeSize   = 8.0
	Explode2Size  = 16.0
)

// Weapons
const (
	BulletSpeed       = 5.0
	MissileSpeed      = 3.0
	MissileHealth     = 5
	LightWidth        = 3.0
	BulletPeriod      = 5
	HeavyWeaponPeriod = 50

	LightningAccel       = 8.0
	LightningFeedback    = 0.1
	LightningVertices    = 32
	LightningMaxBranches = 31
	LightningReach       = 4.0
)

// Missile homing
const (
	MissileDetectionRange = 256.0
	MissileHomingSpeed    = 0.25
	MissileTrailLength    = 20
	MissileDamage         = 5
)

// Enemy bullet patterns
const (
	RingBulletCount   = 10
	RingFireChance    = 256 // 1 in N per frame
	AimlessFireChance = 64
	PhaseStep         = 0.02 * math.Pi
	SpiralTurn        = 0.02 * math.Pi
	SpiralSpin        = 0.01 * math.Pi
)

// Enemy durability
const (
	Enemy1Health      = 3
	SpiralEnemyHealth = 16
	BossHealth        = 64
	ShieldMax         = 64
	ShieldLeakBelow   = 16 // damage bypasses the shield below this
	ShieldRegenPeriod = 8
)

// Centipede
const (
	CentipedeJoints      = 8
	CentipedeJointHealth = 4
	CentipedeSpeed       = 1.0
	CentipedeTurnRate    = math.Pi / 128
	CentipedeLinkLength  = 12.0
	CentipedeTaskPeriod  = 100
	CentipedeChip        = 1
)

// Scoring
const (
	ScoreEnemy = 10
	ScoreBoss  = 100
)
