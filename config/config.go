package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer everything draws on.
const Default = ecs.LayerDefault

// TimeStep is the fixed simulation step in seconds. Ebitengine ticks Update
// at 60 TPS, so all speeds and durations integrate against this.
const TimeStep = 1.0 / 60.0

// PlayerConfig contains all player-related tuning values. Durations are in
// seconds; speeds in world pixels per second.
type PlayerConfig struct {
	// Movement
	MoveSpeed float64
	JumpSpeed float64
	MaxJumps  int

	// Combat
	MaxHealth      int
	InvulnDuration float64
	ComboWindow    float64
	AttackCooldown float64
	AttackDamage   int
	// Movement damping while an attack animation plays.
	Attack1SpeedScale float64
	Attack2SpeedScale float64

	// Roll
	RollSpeed    float64
	RollDuration float64
	RollCooldown float64

	// Fallback duration when the spawn animation is a substituted single
	// frame and would otherwise finish instantly.
	SpawnMinDuration float64

	// Wall mechanics
	WallHoldGrace  float64
	WallSlideSpeed float64
	WallJumpSpeedX float64

	// Dimensions of the collision box in unscaled sheet pixels.
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyTypeConfig contains tuning for one enemy kind.
type EnemyTypeConfig struct {
	Name        string
	SheetPath   string
	Health      int
	Damage      int
	PatrolSpeed float64
	ChaseSpeed  float64
	// Enter chase when the player is closer than ChaseRange; attack when
	// closer than AttackRange.
	AttackRange      float64
	ChaseRange       float64
	MaxVerticalChase float64
	AttackCooldown   float64
	InvulnDuration   float64
	PatrolDistance   float64

	Knockback float64

	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyConfig contains enemy system configuration.
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// Chase range is multiplied by this once chasing, so enemies don't
	// flicker between patrol and chase at the boundary.
	HysteresisMultiplier float64
}

// CombatConfig contains combat-related configuration values.
type CombatConfig struct {
	// Hitbox sizes, relative to the attacker's collision box.
	SlashHitboxWidth  float64
	SlashHitboxHeight float64

	PlayerKnockback float64
	KnockbackUpward float64

	// Screen shake on the player taking damage.
	DamageShakeIntensity float64
	DamageShakeDuration  float64

	// Hit flash
	DamageFlashDuration float64
}

// ChestConfig tunes chest interaction.
type ChestConfig struct {
	SheetPath string
	// How close the player must stand to open a chest.
	InteractDistance float64
	// Pause between the opening animation finishing and the reward.
	OpenDelay float64
	// Pickup count granted per chest kind.
	Rewards map[string]int
}

// PhysicsConfig contains physics-related configuration values.
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	Friction     float64

	// Foot probe depth used for one-way platform landing checks.
	PlatformFootDepth float64
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
	DeadZoneWidth           float64
	DeadZoneHeight          float64
}

// UIConfig contains HUD configuration values.
type UIConfig struct {
	HealthPipSize   float64
	HealthPipMargin float64
	HealthFgColor   color.RGBA
	HealthBgColor   color.RGBA
	FontSize        float64
}

// MenuConfig contains main menu configuration values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values.
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	HintY           float64
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
	Scale  int
	// Root directory assets are loaded from.
	AssetDir string
	// Relative paths inside AssetDir.
	PlayerSheet string
	MapPath     string
	FontPath    string
}

// Global configuration instances.
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Chest ChestConfig
var Physics PhysicsConfig
var Camera CameraConfig
var UI UIConfig
var Menu MenuConfig
var GameOver GameOverConfig

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
	WatchAssets  bool
}

var Debug DebugConfig

// Shared RGBA color constants.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Placeholder  = color.RGBA{R: 200, G: 80, B: 80, A: 255}
)

// Direction constants for entity facing.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:       640,
		Height:      360,
		Scale:       2,
		AssetDir:    "Assets",
		PlayerSheet: "SwordMaster/Sword Master Sprite Sheet3.json",
		MapPath:     "maps/level1.json",
		FontPath:    "fonts/excel.ttf",
	}

	Player = PlayerConfig{
		MoveSpeed: 160.0,
		JumpSpeed: 700.0,
		MaxJumps:  2,

		MaxHealth:         2,
		InvulnDuration:    1.0,
		ComboWindow:       0.7,
		AttackCooldown:    0.3,
		AttackDamage:      1,
		Attack1SpeedScale: 0.2,
		Attack2SpeedScale: 0.1,

		RollSpeed:    320.0,
		RollDuration: 0.6,
		RollCooldown: 1.0,

		SpawnMinDuration: 0.6,

		WallHoldGrace:  0.35,
		WallSlideSpeed: 80.0,
		WallJumpSpeedX: 220.0,

		CollisionWidth:  14,
		CollisionHeight: 34,
	}

	Enemy = EnemyConfig{
		HysteresisMultiplier: 1.3,
		Types: map[string]EnemyTypeConfig{
			"assassin": {
				Name:             "assassin",
				SheetPath:        "enemies/assassin/Assassin.json",
				Health:           3,
				Damage:           1,
				PatrolSpeed:      40.0,
				ChaseSpeed:       90.0,
				AttackRange:      30.0,
				ChaseRange:       140.0,
				MaxVerticalChase: 48.0,
				AttackCooldown:   1.2,
				InvulnDuration:   0.3,
				PatrolDistance:   64.0,
				Knockback:        120.0,
				CollisionWidth:   14,
				CollisionHeight:  30,
			},
		},
	}

	Combat = CombatConfig{
		SlashHitboxWidth:  26,
		SlashHitboxHeight: 28,

		PlayerKnockback: 160.0,
		KnockbackUpward: 120.0,

		DamageShakeIntensity: 4.0,
		DamageShakeDuration:  0.25,
		DamageFlashDuration:  0.15,
	}

	Chest = ChestConfig{
		SheetPath:        "chests/Chest_1.json",
		InteractDistance: 64.0,
		OpenDelay:        2.0,
		Rewards:          map[string]int{"basic": 1, "gold": 3},
	}

	Physics = PhysicsConfig{
		Gravity:           1400.0,
		MaxFallSpeed:      600.0,
		Friction:          1200.0,
		PlatformFootDepth: 2.0,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.12,
		LookAheadDistanceX:      50.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 10.0,
		DeadZoneWidth:           10.0,
		DeadZoneHeight:          10.0,
	}

	UI = UIConfig{
		HealthPipSize:   10,
		HealthPipMargin: 4,
		HealthFgColor:   LightRed,
		HealthBgColor:   color.RGBA{R: 60, G: 20, B: 20, A: 255},
		FontSize:        12,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 12, G: 12, B: 24, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            90,
		MenuStartY:        170,
		MenuItemHeight:    24,
		MenuOptions:       []string{"Start", "Fullscreen", "Quit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 20, G: 4, B: 4, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		TitleY:          120,
		HintY:           200,
	}
}
