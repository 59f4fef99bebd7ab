package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

// UpdateEffects ticks every entity's timed effects and runs the state
// transitions expiring effects request, e.g. wall-hold grace running out
// dropping the entity into a wall slide.
func UpdateEffects(ecs *ecs.ECS) {
	components.Effects.Each(ecs.World, func(e *donburi.Entry) {
		effects := components.Effects.Get(e)
		for _, expired := range effects.Tick(cfg.TimeStep) {
			if expired.OnExpire == cfg.StateNone {
				continue
			}
			components.State.Get(e).TransitionTo(expired.OnExpire)
		}
	})

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration -= cfg.TimeStep
		}
	})
}

// TriggerHitFlash flashes the sprite white for a short moment.
func TriggerHitFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	components.Flash.SetValue(e, components.FlashData{
		Duration: cfg.Combat.DamageFlashDuration,
		R:        1, G: 1, B: 1,
	})
}

// TriggerScreenShake starts a camera shake, keeping whichever of the
// current and requested shakes is stronger.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration > 0 && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}
