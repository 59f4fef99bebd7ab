package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
)

// UpdateDamage consumes pending damage events: health loss, knockback, the
// hit or death transition, and an invulnerability window.
func UpdateDamage(ecs *ecs.ECS) {
	// Collect first; consuming an event moves the entry between archetypes
	// and must not happen mid-iteration.
	var pending []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		pending = append(pending, e)
	})
	for _, e := range pending {
		event := *components.DamageEvent.Get(e)
		e.RemoveComponent(components.DamageEvent)
		applyDamage(ecs, e, event)
	}
}

func applyDamage(ecs *ecs.ECS, e *donburi.Entry, event components.DamageEventData) {
	if e.HasComponent(components.Death) {
		return
	}
	if e.HasComponent(components.Effects) &&
		components.Effects.Get(e).Has(components.EffectInvulnerable) {
		return
	}

	health := components.Health.Get(e)
	dead := health.Damage(event.Amount)

	physics := components.Physics.Get(e)
	physics.SpeedX = event.KnockbackX
	physics.SpeedY = event.KnockbackY

	state := components.State.Get(e)
	if dead {
		killEntity(ecs, e, state)
	} else {
		state.TransitionTo(cfg.Hit)
		invuln := cfg.Player.InvulnDuration
		if e.HasComponent(components.Enemy) {
			invuln = components.Enemy.Get(e).TypeConfig.InvulnDuration
		}
		components.Effects.Get(e).Apply(components.EffectInvulnerable, invuln)
	}

	TriggerHitFlash(e)
	if event.Heavy {
		TriggerScreenShake(ecs, cfg.Combat.DamageShakeIntensity, cfg.Combat.DamageShakeDuration)
	}
}

func killEntity(ecs *ecs.ECS, e *donburi.Entry, state *components.StateData) {
	state.TransitionTo(cfg.Death)
	e.AddComponent(components.Death)
	components.Death.SetValue(e, components.DeathData{})

	// A dying attacker must not leave a live hitbox behind.
	if e.HasComponent(components.MeleeAttack) {
		despawnHitbox(ecs, components.MeleeAttack.Get(e))
	}

	fields := logrus.Fields{"entity": "enemy"}
	if e.HasComponent(components.Player) {
		fields["entity"] = "player"
		TriggerScreenShake(ecs, cfg.Combat.DamageShakeIntensity*1.5, cfg.Combat.DamageShakeDuration)
	} else if e.HasComponent(components.Enemy) {
		fields["type"] = components.Enemy.Get(e).TypeName
	}
	logging.L().WithFields(fields).Debug("entity died")
}
