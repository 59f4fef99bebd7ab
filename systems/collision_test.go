package systems

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

// spawnBody creates a bare physics body, no state machine attached.
func (tw *testWorld) spawnBody(x, y, w, h float64) *donburi.Entry {
	entry := tw.ecs.World.Entry(tw.ecs.World.Create(components.Physics, components.Object))
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	tw.space.Add(obj)
	components.Physics.SetValue(entry, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Friction:     cfg.Physics.Friction,
		MaxSpeedX:    1000,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	return entry
}

func TestSolidStopsHorizontalMovement(t *testing.T) {
	tw := newTestWorld(t)
	wall := tw.addSolid(200, 0, 32, 300)

	body := tw.spawnBody(150, 100, 14, 34)
	physics := components.Physics.Get(body)
	physics.Gravity = 0
	physics.SpeedX = 600

	for i := 0; i < 30; i++ {
		UpdateCollisions(tw.ecs)
	}

	obj := components.Object.Get(body)
	if obj.X+obj.W > wall.X+0.001 {
		t.Errorf("body penetrated the wall: right edge %v, wall at %v", obj.X+obj.W, wall.X)
	}
	if physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v after hitting a wall, want 0", physics.SpeedX)
	}
}

func TestCeilingStopsUpwardMovement(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 0, 640, 32)

	body := tw.spawnBody(100, 100, 14, 34)
	physics := components.Physics.Get(body)
	physics.Gravity = 0
	physics.SpeedY = -800

	for i := 0; i < 30; i++ {
		UpdateCollisions(tw.ecs)
	}

	obj := components.Object.Get(body)
	if obj.Y < 32-0.001 {
		t.Errorf("body passed through the ceiling: y = %v", obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v after hitting a ceiling, want 0", physics.SpeedY)
	}
}

func TestOneWayPlatformIgnoredFromBelow(t *testing.T) {
	tw := newTestWorld(t)
	tw.addPlatform(0, 100, 640, 8)

	body := tw.spawnBody(100, 150, 14, 34)
	physics := components.Physics.Get(body)
	physics.Gravity = 0
	physics.SpeedY = -400

	for i := 0; i < 20; i++ {
		UpdateCollisions(tw.ecs)
	}

	obj := components.Object.Get(body)
	if obj.Y+obj.H > 100 {
		t.Errorf("body did not pass up through the platform: bottom = %v", obj.Y+obj.H)
	}
	if physics.SpeedY == 0 {
		t.Error("upward movement was stopped by a one-way platform")
	}
}

func TestOneWayPlatformCatchesFall(t *testing.T) {
	tw := newTestWorld(t)
	platform := tw.addPlatform(0, 200, 640, 8)

	body := tw.spawnBody(100, 120, 14, 34)
	physics := components.Physics.Get(body)

	for i := 0; i < 120 && physics.OnGround == nil; i++ {
		UpdatePhysics(tw.ecs)
		UpdateCollisions(tw.ecs)
	}

	if physics.OnGround != platform {
		t.Fatal("body never landed on the platform")
	}
	obj := components.Object.Get(body)
	if got := obj.Y + obj.H; math.Abs(got-platform.Y) > 0.001 {
		t.Errorf("feet at %v, want flush with platform top %v", got, platform.Y)
	}
}

func TestLevelBoundsClampHorizontal(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)

	// Minimal level record: 10x5 tiles of 32px.
	levelEntry := tw.ecs.World.Entry(tw.ecs.World.Create(components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{
		CurrentLevel: testLevel(10, 5, 32),
	})

	body := tw.spawnBody(5, 100, 14, 34)
	physics := components.Physics.Get(body)
	physics.Gravity = 0
	physics.SpeedX = -600

	for i := 0; i < 30; i++ {
		UpdateCollisions(tw.ecs)
	}

	obj := components.Object.Get(body)
	if obj.X < 0 {
		t.Errorf("body left the level: x = %v", obj.X)
	}
	if physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v at the level edge, want 0", physics.SpeedX)
	}
}

func TestFallingOutOfLevelKills(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)

	levelEntry := tw.ecs.World.Entry(tw.ecs.World.Create(components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{
		CurrentLevel: testLevel(20, 10, 32),
	})

	player := tw.spawnPlayer(t, 100, 200)

	// Drop past the bottom edge, 320px below the level.
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)
	components.State.Get(player).TransitionTo(cfg.Fall)
	physics.OnGround = nil
	obj.X, obj.Y = 1000, 640
	obj.Update()

	for i := 0; i < 10 && !player.HasComponent(components.Death); i++ {
		tw.tick()
	}
	if !player.HasComponent(components.Death) {
		t.Fatal("body below the level floor was not killed")
	}
	if got := components.Health.Get(player).Current; got > 0 {
		t.Errorf("health = %d, want 0", got)
	}
}

func TestDamageTileAttachesEvent(t *testing.T) {
	tw := newTestWorld(t)
	hazard := resolv.NewObject(90, 160, 64, 40, tags.ResolvDamage)
	tw.space.Add(hazard)
	tw.addSolid(0, 200, 640, 32)

	player := tw.spawnPlayer(t, 400, 200)
	hp := components.Health.Get(player).Current

	// Step into the hazard.
	obj := components.Object.Get(player)
	obj.X = 100
	obj.Update()
	tw.tick()

	if got := components.Health.Get(player).Current; got >= hp {
		t.Errorf("health = %d, want less than %d after standing in a hazard", got, hp)
	}
	if got := stateOf(player); got != cfg.Hit && got != cfg.Death {
		t.Errorf("state = %v, want hit or death", got)
	}
	if !components.Effects.Get(player).Has(components.EffectInvulnerable) {
		t.Error("hazard damage did not grant an invulnerability window")
	}
}
