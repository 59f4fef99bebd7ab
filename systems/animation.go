package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

var animated = donburi.NewQuery(filter.Contains(
	components.Animation,
	components.State,
))

// UpdateAnimations keeps each entity's playing animation in sync with its
// logical state and advances the frame cursor.
func UpdateAnimations(ecs *ecs.ECS) {
	animated.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		state := components.State.Get(e)

		if e.HasComponent(components.Player) {
			anim.FacingRight = components.Player.Get(e).Direction.X >= 0
		}

		anim.SetState(state.CurrentState)
		anim.Cursor.Advance(cfg.TimeStep)
	})
}
