package config

import (
	"math/rand"
	"time"
)

// VariantID names one of the playable minigames
type VariantID string

const (
	VariantRooftop VariantID = "rooftop"
	VariantPlaza   VariantID = "plaza"
	VariantFence   VariantID = "fence"
)

// SpawnGeometry selects how and where enemies enter the play area
type SpawnGeometry int

const (
	// SpawnFall drops enemies from above the top edge at a random x
	SpawnFall SpawnGeometry = iota
	// SpawnEdges launches enemies from a random screen edge toward the center
	SpawnEdges
	// SpawnGroundScroll slides enemies in from the right at floor level
	SpawnGroundScroll
)

// CollisionShape selects the narrow-phase test used between player and entities
type CollisionShape int

const (
	// HitBox tests derived axis-aligned rectangles
	HitBox CollisionShape = iota
	// HitCircle tests shrunken radial hulls
	HitCircle
)

// WinPolicy selects what counts as winning a session
type WinPolicy int

const (
	// WinOnScore wins as soon as the score reaches the variant target
	WinOnScore WinPolicy = iota
	// WinOnSurvive wins by still being alive when the timer runs out
	WinOnSurvive
)

// ScoreAccrual selects how the session score grows
type ScoreAccrual int

const (
	// AccruePickups adds PointValue for every consumed point item
	AccruePickups ScoreAccrual = iota
	// AccruePerSecond grows the score with elapsed session time
	AccruePerSecond
)

// EnemyKindConfig describes one spawnable enemy/obstacle type
type EnemyKindConfig struct {
	Name     string
	Visual   string  // visual handle resolved by the asset layer
	Weight   float64 // relative spawn weight
	Aspect   float64 // width/height used for derived hitboxes
	SpinRate float64 // radians per second, 0 = no spin
}

// PickupKindConfig describes one collectible or point item type
type PickupKindConfig struct {
	Name   string
	Visual string
	Size   float64 // logical size in pixels
}

// VariantConfig is the full policy set for one minigame. The simulation
// engine is shared; everything that differs between minigames lives here.
type VariantConfig struct {
	ID    VariantID
	Title string

	Duration time.Duration

	Geometry SpawnGeometry
	Shape    CollisionShape
	Win      WinPolicy
	Accrual  ScoreAccrual

	TargetScore     int     // WinOnScore threshold
	PointValue      int     // score per consumed point item
	PointsPerSecond float64 // AccruePerSecond rate

	// Enemy spawning. Interval is the fixed re-arm delay; when IntervalMin
	// and IntervalMax are both set they replace it with a uniform draw.
	EnemyInterval    time.Duration
	EnemyIntervalMin time.Duration
	EnemyIntervalMax time.Duration
	MaxEnemies       int
	EnemySpeed       float64 // pixels per second
	SizeMin, SizeMax float64
	EnemyKinds       []EnemyKindConfig

	// Pickup slots. A zero delay or an empty kind list disables the slot.
	CollectibleDelay time.Duration
	PointDelay       time.Duration
	Collectibles     []PickupKindConfig
	Points           []PickupKindConfig
	PickupSpeed      float64 // pixels per second along the field motion, 0 = static
	PointAltMin      float64 // elevation band above the floor for scrolling points
	PointAltMax      float64

	// Player movement and derived hitbox
	PlayerVisual      string
	PlayerHeightFrac  float64 // player height as a fraction of viewport height
	PlayerFixedHeight float64 // used instead when PlayerHeightFrac is 0
	PlayerAspect      float64 // fallback width/height when the visual is unresolved
	MoveSpeed         float64 // pixels per second
	Gravity           float64 // pixels per second squared, 0 = no gravity
	JumpSpeed         float64 // upward impulse in pixels per second
	FloorY            float64 // ground line for grounded variants

	// Radial narrow phase tuning
	PlayerRadiusScale float64 // player radius = scale * derived width / 2
	ObstacleRadiusDiv float64 // obstacle radius = size / div

	// Field margins
	SpawnMargin  float64 // how far outside the viewport entities spawn
	CullMargin   float64 // how far outside the viewport entities are culled
	CenterJitter float64 // radius of the aim jitter around the screen center
}

// PlayerHeight returns the player's derived sprite height in pixels.
func (v *VariantConfig) PlayerHeight() float64 {
	if v.PlayerHeightFrac > 0 {
		return v.PlayerHeightFrac * float64(C.Height)
	}
	return v.PlayerFixedHeight
}

// PlayerWidth derives the sprite width from the resolved aspect, falling
// back to the variant's configured aspect when the visual is unresolved.
func (v *VariantConfig) PlayerWidth(aspect float64) float64 {
	if aspect <= 0 {
		aspect = v.PlayerAspect
	}
	return v.PlayerHeight() * aspect
}

// PlayerRadius returns the shrunken radial hull used by circle variants.
func (v *VariantConfig) PlayerRadius(aspect float64) float64 {
	scale := v.PlayerRadiusScale
	if scale <= 0 {
		scale = 1
	}
	return scale * v.PlayerWidth(aspect) / 2
}

// ObstacleRadius returns the forgiving radial hull for an entity of the
// given logical size.
func (v *VariantConfig) ObstacleRadius(size float64) float64 {
	div := v.ObstacleRadiusDiv
	if div <= 0 {
		div = 2
	}
	return size / div
}

// EnemyRespawnInterval draws the delay before the next enemy spawn.
func (v *VariantConfig) EnemyRespawnInterval(rng *rand.Rand) time.Duration {
	if v.EnemyIntervalMax > v.EnemyIntervalMin && v.EnemyIntervalMin > 0 {
		span := v.EnemyIntervalMax - v.EnemyIntervalMin
		return v.EnemyIntervalMin + time.Duration(rng.Int63n(int64(span)))
	}
	return v.EnemyInterval
}

// Variants maps every playable minigame to its policy set
var Variants map[VariantID]*VariantConfig

// VariantOrder is the district map progression order
var VariantOrder []VariantID

func init() {
	rooftop := &VariantConfig{
		ID:    VariantRooftop,
		Title: "Rooftop Drop",

		Duration: 30 * time.Second,
		Geometry: SpawnFall,
		Shape:    HitBox,
		Win:      WinOnScore,
		Accrual:  AccruePickups,

		TargetScore: 100,
		PointValue:  10,

		EnemyInterval: 900 * time.Millisecond,
		MaxEnemies:    8,
		EnemySpeed:    180,
		SizeMin:       24,
		SizeMax:       48,
		EnemyKinds: []EnemyKindConfig{
			{Name: "bottle", Visual: "enemy_bottle", Weight: 4, Aspect: 0.45, SpinRate: 3.5},
			{Name: "flowerpot", Visual: "enemy_flowerpot", Weight: 1, Aspect: 1.0, SpinRate: 2.2},
		},

		CollectibleDelay: 6 * time.Second,
		PointDelay:       2500 * time.Millisecond,
		Collectibles: []PickupKindConfig{
			{Name: "heart", Visual: "pickup_heart", Size: 22},
		},
		Points: []PickupKindConfig{
			{Name: "can_silver", Visual: "pickup_can_silver", Size: 20},
			{Name: "can_gold", Visual: "pickup_can_gold", Size: 20},
		},
		PickupSpeed: 130,

		PlayerVisual:     "writer",
		PlayerHeightFrac: 0.16,
		PlayerAspect:     0.6,
		MoveSpeed:        260,
		FloorY:           320,

		SpawnMargin: 24,
		CullMargin:  60,
	}

	plaza := &VariantConfig{
		ID:    VariantPlaza,
		Title: "Plaza Panic",

		Duration: 20 * time.Second,
		Geometry: SpawnEdges,
		Shape:    HitCircle,
		Win:      WinOnSurvive,
		Accrual:  AccruePerSecond,

		PointsPerSecond: 5,

		EnemyIntervalMin: 450 * time.Millisecond,
		EnemyIntervalMax: 1100 * time.Millisecond,
		MaxEnemies:       4,
		EnemySpeed:       150,
		SizeMin:          28,
		SizeMax:          52,
		EnemyKinds: []EnemyKindConfig{
			{Name: "chair", Visual: "enemy_chair", Weight: 4, Aspect: 0.9, SpinRate: 4.0},
			{Name: "stool", Visual: "enemy_stool", Weight: 1, Aspect: 1.0, SpinRate: 2.8},
		},

		// No pickups on the plaza: survival only.

		PlayerVisual:      "writer_top",
		PlayerFixedHeight: 32,
		PlayerAspect:      1.0,
		MoveSpeed:         240,

		PlayerRadiusScale: 0.8,
		ObstacleRadiusDiv: 2.5,

		SpawnMargin:  40,
		CullMargin:   80,
		CenterJitter: 70,
	}

	fence := &VariantConfig{
		ID:    VariantFence,
		Title: "Fence Hop",

		Duration: 40 * time.Second,
		Geometry: SpawnGroundScroll,
		Shape:    HitBox,
		Win:      WinOnScore,
		Accrual:  AccruePickups,

		TargetScore: 80,
		PointValue:  10,

		EnemyInterval: 1400 * time.Millisecond,
		MaxEnemies:    3,
		EnemySpeed:    160,
		SizeMin:       20,
		SizeMax:       36,
		EnemyKinds: []EnemyKindConfig{
			{Name: "cone", Visual: "enemy_cone", Weight: 4, Aspect: 0.8},
			{Name: "crate", Visual: "enemy_crate", Weight: 1, Aspect: 1.0},
		},

		CollectibleDelay: 8 * time.Second,
		PointDelay:       2500 * time.Millisecond,
		Collectibles: []PickupKindConfig{
			{Name: "heart", Visual: "pickup_heart", Size: 22},
		},
		Points: []PickupKindConfig{
			{Name: "can_silver", Visual: "pickup_can_silver", Size: 20},
		},
		PickupSpeed: 160,
		PointAltMin: 40,
		PointAltMax: 110,

		PlayerVisual:     "writer",
		PlayerHeightFrac: 0.16,
		PlayerAspect:     0.6,
		MoveSpeed:        220,
		Gravity:          1500,
		JumpSpeed:        430,
		FloorY:           320,

		SpawnMargin: 24,
		CullMargin:  60,
	}

	Variants = map[VariantID]*VariantConfig{
		VariantRooftop: rooftop,
		VariantPlaza:   plaza,
		VariantFence:   fence,
	}

	VariantOrder = []VariantID{VariantRooftop, VariantPlaza, VariantFence}
}
