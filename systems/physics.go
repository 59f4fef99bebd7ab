package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

// UpdatePhysics integrates gravity and friction for every moving entity.
// Position changes happen in UpdateCollisions, which sweeps each axis
// against the collision space.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.TimeStep

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		// Dead entities freeze in place while the death animation plays.
		if e.HasComponent(components.Death) {
			physics.SpeedX = 0
			physics.SpeedY = 0
			return
		}

		// Friction only drags grounded movement; air control is the state
		// machine's business.
		if physics.OnGround != nil {
			switch {
			case physics.SpeedX > physics.Friction*dt:
				physics.SpeedX -= physics.Friction * dt
			case physics.SpeedX < -physics.Friction*dt:
				physics.SpeedX += physics.Friction * dt
			default:
				physics.SpeedX = 0
			}
		}

		if physics.SpeedX > physics.MaxSpeedX {
			physics.SpeedX = physics.MaxSpeedX
		} else if physics.SpeedX < -physics.MaxSpeedX {
			physics.SpeedX = -physics.MaxSpeedX
		}

		physics.SpeedY += physics.Gravity * dt
		if physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
		if physics.WallSliding != nil && physics.SpeedY > cfg.Player.WallSlideSpeed {
			physics.SpeedY = cfg.Player.WallSlideSpeed
		}
	})
}
