package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

// enemyCorpseLinger is how long a finished death animation stays on screen
// before the enemy entity is removed.
const enemyCorpseLinger = 0.8

// UpdateDeaths removes enemies whose death animation has played out and
// respawns the player once a respawn has been requested.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		dead = append(dead, e)
	})

	for _, e := range dead {
		if e.HasComponent(components.Player) {
			updatePlayerDeath(e)
			continue
		}
		updateEnemyDeath(ecs, e)
	}
}

func updateEnemyDeath(ecs *ecs.ECS, e *donburi.Entry) {
	death := components.Death.Get(e)
	if !components.Animation.Get(e).Finished() {
		return
	}
	death.Timer += cfg.TimeStep
	if death.Timer < enemyCorpseLinger {
		return
	}
	removeFromSpace(ecs, e)
	ecs.World.Remove(e.Entity())
}

func updatePlayerDeath(e *donburi.Entry) {
	death := components.Death.Get(e)
	if !death.RespawnRequested {
		return
	}

	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	obj.X = player.SpawnX
	obj.Y = player.SpawnY
	obj.Update()
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.JumpsUsed = 0
	physics.OnGround = nil
	physics.WallSliding = nil
	physics.IgnorePlatform = nil

	health := components.Health.Get(e)
	health.Current = health.Max

	state := components.State.Get(e)
	state.TransitionTo(cfg.Spawn)
	components.Animation.Get(e).SetState(cfg.Spawn)

	effects := components.Effects.Get(e)
	effects.Apply(components.EffectSpawnLock, cfg.Player.SpawnMinDuration)
	effects.Apply(components.EffectInvulnerable, cfg.Player.InvulnDuration)

	e.RemoveComponent(components.Death)
}
