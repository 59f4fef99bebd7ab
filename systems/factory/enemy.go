package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
	"github.com/automoto/darkvania/tags"
)

// enemyBindings maps an enemy type name to its animation binding.
var enemyBindings = map[string]cfg.AnimationBinding{
	"assassin": cfg.AssassinBinding,
}

// CreateEnemy spawns an enemy of a configured type, patrolling around its
// spawn point.
func CreateEnemy(e *ecs.ECS, registry *assets.Registry, typeName string, x, y float64) (*donburi.Entry, error) {
	tuning, ok := cfg.Enemy.Types[typeName]
	if !ok {
		logging.L().WithField("type", typeName).Warn("unknown enemy type, skipping spawn")
		return nil, nil
	}
	binding, ok := enemyBindings[typeName]
	if !ok {
		binding = cfg.AssassinBinding
	}

	scale := cfg.C.Scale
	w := tuning.CollisionWidth * float64(scale)
	h := tuning.CollisionHeight * float64(scale)

	set, err := loadAnimationSet(registry, tuning.SheetPath, binding, int(w), int(h))
	if err != nil {
		return nil, err
	}

	enemy := archetypes.Enemy.Spawn(e)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:    typeName,
		TypeConfig:  &tuning,
		PatrolLeft:  x - tuning.PatrolDistance,
		PatrolRight: x + w + tuning.PatrolDistance,
		HomeX:       x,
		HomeY:       y,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: tuning.Health,
		Max:     tuning.Health,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Friction:     cfg.Physics.Friction,
		MaxSpeedX:    tuning.ChaseSpeed,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Patrol,
		PreviousState: cfg.Patrol,
	})
	components.Animation.SetValue(enemy, components.AnimationData{
		Set:          set,
		Cursor:       set.NewCursor(cfg.Patrol),
		CurrentState: cfg.Patrol,
		FacingRight:  true,
		SheetPath:    tuning.SheetPath,
	})

	return enemy, nil
}
