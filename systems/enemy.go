package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

// UpdateEnemies runs the patrol/chase/attack state machine for every live
// enemy.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, hasPlayer := components.Player.First(ecs.World)
	var playerObj *components.ObjectData
	if hasPlayer && !playerEntry.HasComponent(components.Death) {
		playerObj = components.Object.Get(playerEntry)
	} else {
		playerObj = nil
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		updateSingleEnemy(e, playerObj)
	})
}

func updateSingleEnemy(e *donburi.Entry, playerObj *components.ObjectData) {
	enemy := components.Enemy.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	obj := components.Object.Get(e).Object
	tuning := enemy.TypeConfig

	state.Elapsed += cfg.TimeStep
	if enemy.AttackCooldown > 0 {
		enemy.AttackCooldown -= cfg.TimeStep
	}

	centerX := obj.X + obj.W/2
	distX, distY := math.Inf(1), math.Inf(1)
	if playerObj != nil {
		target := playerObj.Object
		distX = math.Abs((target.X + target.W/2) - centerX)
		distY = math.Abs((target.Y + target.H/2) - (obj.Y + obj.H/2))
	}
	playerInSight := distX <= tuning.ChaseRange && distY <= tuning.MaxVerticalChase

	switch state.CurrentState {
	case cfg.Patrol:
		patrol(enemy, physics, anim, centerX)
		if playerInSight {
			state.TransitionTo(cfg.Chase)
		}

	case cfg.Chase:
		// Widened range while chasing so the enemy doesn't flicker back to
		// patrol at the boundary.
		keepRange := tuning.ChaseRange * cfg.Enemy.HysteresisMultiplier
		switch {
		case playerObj == nil || distX > keepRange || distY > tuning.MaxVerticalChase:
			state.TransitionTo(cfg.Patrol)
		case distX <= tuning.AttackRange && enemy.AttackCooldown <= 0:
			if state.TransitionTo(cfg.EnemyAttack) {
				physics.SpeedX = 0
				faceTarget(anim, centerX, playerObj.Object)
			}
		default:
			chase(physics, anim, centerX, playerObj.Object, tuning)
		}

	case cfg.EnemyAttack:
		physics.SpeedX = 0
		if anim.Finished() {
			enemy.AttackCooldown = tuning.AttackCooldown
			state.TransitionTo(cfg.Chase)
		}

	case cfg.Hit:
		physics.SpeedX *= 0.9
		if anim.Finished() {
			if playerInSight {
				state.TransitionTo(cfg.Chase)
			} else {
				state.TransitionTo(cfg.Patrol)
			}
		}

	default:
		state.TransitionTo(cfg.Patrol)
	}
}

// patrol walks between the two patrol boundaries, turning at each end.
func patrol(enemy *components.EnemyData, physics *components.PhysicsData, anim *components.AnimationData, centerX float64) {
	speed := enemy.TypeConfig.PatrolSpeed
	if !anim.FacingRight {
		speed = -speed
	}

	if centerX <= enemy.PatrolLeft {
		anim.FacingRight = true
		speed = enemy.TypeConfig.PatrolSpeed
	} else if centerX >= enemy.PatrolRight {
		anim.FacingRight = false
		speed = -enemy.TypeConfig.PatrolSpeed
	}

	physics.SpeedX = speed
}

func chase(physics *components.PhysicsData, anim *components.AnimationData, centerX float64, target *resolv.Object, tuning *cfg.EnemyTypeConfig) {
	targetX := target.X + target.W/2
	if targetX > centerX {
		anim.FacingRight = true
		physics.SpeedX = tuning.ChaseSpeed
	} else {
		anim.FacingRight = false
		physics.SpeedX = -tuning.ChaseSpeed
	}
}

func faceTarget(anim *components.AnimationData, centerX float64, target *resolv.Object) {
	anim.FacingRight = target.X+target.W/2 > centerX
}
