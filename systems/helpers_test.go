package systems

import (
	"image"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/assets/aseprite"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

// testFrames is the per-clip frame count of the synthetic test sheet. Every
// clip lasts testFrames * testFrameDur seconds.
const (
	testFrames   = 5
	testFrameDur = 0.05
)

func testDescriptor(tagNames ...string) *aseprite.Descriptor {
	d := &aseprite.Descriptor{}
	for i := 0; i < testFrames; i++ {
		d.Frames = append(d.Frames, aseprite.FrameInfo{
			Source:   image.Rect(i*16, 0, i*16+16, 16),
			Duration: testFrameDur,
		})
	}
	for _, name := range tagNames {
		d.Tags = append(d.Tags, aseprite.Tag{
			Name: name, From: 0, To: testFrames - 1, Direction: aseprite.Forward,
		})
	}
	return d
}

func playerSet(t *testing.T) *assets.AnimationSet {
	t.Helper()
	sheet := aseprite.FromDescriptor(testDescriptor(
		"Idle", "Walk", "Jump", "Fall", "Slash 1", "Slash 2",
		"Appear Tele", "Hit", "death", "Roll",
		"Ledge Grab", "Wall hold", "Wall Slide",
	), nil, 1)
	set, err := assets.BindAnimations(sheet, cfg.PlayerBinding)
	if err != nil {
		t.Fatalf("bind player set: %v", err)
	}
	return set
}

func enemySet(t *testing.T) *assets.AnimationSet {
	t.Helper()
	sheet := aseprite.FromDescriptor(testDescriptor(
		"idle", "run", "jump", "fall", "attack 1", "attack 2", "hit", "death",
	), nil, 1)
	set, err := assets.BindAnimations(sheet, cfg.AssassinBinding)
	if err != nil {
		t.Fatalf("bind enemy set: %v", err)
	}
	return set
}

type testWorld struct {
	ecs   *ecs.ECS
	space *components.SpaceData
	input *components.InputData
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.SetValue(spaceEntry, components.SpaceData{
		Space: resolv.NewSpace(2048, 1024, 16, 16),
	})

	inputEntry := e.World.Entry(e.World.Create(components.Input))

	return &testWorld{
		ecs:   e,
		space: components.Space.Get(spaceEntry),
		input: components.Input.Get(inputEntry),
	}
}

// tick runs one fixed simulation step in scene order, minus the real input
// poll. Tests set tw.input.Current directly before calling.
func (tw *testWorld) tick() {
	UpdateObjects(tw.ecs)
	UpdateEffects(tw.ecs)
	UpdatePhysics(tw.ecs)
	UpdatePlayer(tw.ecs)
	UpdateEnemies(tw.ecs)
	UpdateChests(tw.ecs)
	UpdateCollisions(tw.ecs)
	UpdateCombatHitboxes(tw.ecs)
	UpdateDamage(tw.ecs)
	UpdateDeaths(tw.ecs)
	UpdateAnimations(tw.ecs)

	tw.input.Previous = tw.input.Current
	tw.input.Current = [cfg.ActionCount]bool{}
}

func (tw *testWorld) press(actions ...cfg.ActionID) {
	for _, a := range actions {
		tw.input.Current[a] = true
	}
}

func (tw *testWorld) addSolid(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	tw.space.Add(obj)
	return obj
}

func (tw *testWorld) addPlatform(x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	tw.space.Add(obj)
	return obj
}

// spawnPlayer creates a grounded, idle player standing at x with its feet
// at y.
func (tw *testWorld) spawnPlayer(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()
	player := archetypes.Player.Spawn(tw.ecs)

	w, h := 14.0, 34.0
	obj := resolv.NewObject(x, y-h, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	tw.space.Add(obj)

	set := playerSet(t)
	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		SpawnX:    x,
		SpawnY:    y - h,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth, Max: cfg.Player.MaxHealth,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Friction:     cfg.Physics.Friction,
		MaxSpeedX:    cfg.Player.MoveSpeed * 2,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState: cfg.Idle, PreviousState: cfg.Idle,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Set:          set,
		Cursor:       set.NewCursor(cfg.Idle),
		CurrentState: cfg.Idle,
		FacingRight:  true,
	})

	// Settle onto whatever is below and return to idle.
	tw.tick()
	tw.tick()
	return player
}

func (tw *testWorld) spawnEnemy(t *testing.T, x, y float64) *donburi.Entry {
	t.Helper()
	enemy := archetypes.Enemy.Spawn(tw.ecs)
	tuning := cfg.Enemy.Types["assassin"]

	w, h := 14.0, 30.0
	obj := resolv.NewObject(x, y-h, w, h, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	tw.space.Add(obj)

	set := enemySet(t)
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:    "assassin",
		TypeConfig:  &tuning,
		PatrolLeft:  x - tuning.PatrolDistance,
		PatrolRight: x + w + tuning.PatrolDistance,
		HomeX:       x,
		HomeY:       y,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: tuning.Health, Max: tuning.Health,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Friction:     cfg.Physics.Friction,
		MaxSpeedX:    tuning.ChaseSpeed,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState: cfg.Patrol, PreviousState: cfg.Patrol,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		Set:          set,
		Cursor:       set.NewCursor(cfg.Patrol),
		CurrentState: cfg.Patrol,
		FacingRight:  true,
	})
	return enemy
}

func stateOf(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}

// testLevel is a bare level record for bounds checks, no art or layers.
func testLevel(cols, rows, tileSize int) *assets.Level {
	return &assets.Level{TileSize: tileSize, Cols: cols, Rows: rows}
}
