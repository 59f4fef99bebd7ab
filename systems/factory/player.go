package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

// CreatePlayer spawns the player at a world position, materializing through
// the spawn animation.
func CreatePlayer(e *ecs.ECS, registry *assets.Registry, x, y float64) (*donburi.Entry, error) {
	scale := cfg.C.Scale
	w := cfg.Player.CollisionWidth * float64(scale)
	h := cfg.Player.CollisionHeight * float64(scale)

	set, err := loadAnimationSet(registry, cfg.C.PlayerSheet, cfg.PlayerBinding, int(w), int(h))
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		SpawnX:    x,
		SpawnY:    y,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Friction:     cfg.Physics.Friction,
		MaxSpeedX:    cfg.Player.MoveSpeed * 2,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Spawn,
		PreviousState: cfg.Spawn,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Set:          set,
		Cursor:       set.NewCursor(cfg.Spawn),
		CurrentState: cfg.Spawn,
		FacingRight:  true,
		SheetPath:    cfg.C.PlayerSheet,
	})

	effects := components.Effects.Get(player)
	effects.Apply(components.EffectSpawnLock, cfg.Player.SpawnMinDuration)
	effects.Apply(components.EffectInvulnerable, cfg.Player.InvulnDuration)

	return player, nil
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
