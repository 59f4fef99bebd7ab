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

// UpdateObjects drives the tween-animated level objects: floating platforms
// riding their paths and collectibles bobbing in place. Every collision
// object is re-registered with the space afterwards.
func UpdateObjects(ecs *ecs.ECS) {
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		updateFloatingPlatform(e)
	})

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		updateCollectibleBob(e)
	})

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		components.Object.Get(e).Update()
	})
}

func updateFloatingPlatform(e *donburi.Entry) {
	tween := components.Tween.Get(e)
	mover := components.Mover.Get(e)
	obj := components.Object.Get(e).Object

	progress, _, done := tween.Update(float32(cfg.TimeStep))
	if done {
		tween.Reset()
	}

	oldX, oldY := obj.X, obj.Y
	obj.X, obj.Y = mover.At(float64(progress))

	// Anything standing on the platform rides along.
	carryPassengers(obj, obj.X-oldX, obj.Y-oldY)
}

func carryPassengers(platform *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	check := platform.Check(0, -cfg.Physics.PlatformFootDepth*2, tags.ResolvPlayer, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, rider := range check.Objects {
		entry, ok := rider.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Physics) {
			continue
		}
		if components.Physics.Get(entry).OnGround != platform {
			continue
		}
		rider.X += dx
		rider.Y += dy
		rider.Update()
	}
}

// updateCollectibleBob floats a pickup on a slow sine around its anchor.
func updateCollectibleBob(e *donburi.Entry) {
	pickup := components.Collectible.Get(e)
	obj := components.Object.Get(e).Object

	tween := components.Tween.Get(e)
	phase, _, done := tween.Update(float32(cfg.TimeStep))
	if done {
		tween.Reset()
	}
	obj.Y = pickup.BaseY + math.Sin(float64(phase)*2*math.Pi)*3
}
