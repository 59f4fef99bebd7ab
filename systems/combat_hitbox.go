package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

var attackers = donburi.NewQuery(filter.Contains(
	components.MeleeAttack,
	components.Animation,
	components.State,
	components.Object,
))

// UpdateCombatHitboxes spawns a hitbox while an attack animation is inside
// its active frame window, follows the attacker, and applies damage to
// anything it overlaps. One victim is hit at most once per swing.
func UpdateCombatHitboxes(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	attackers.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		updateAttacker(ecs, e)
	}
}

func updateAttacker(ecs *ecs.ECS, owner *donburi.Entry) {
	melee := components.MeleeAttack.Get(owner)
	state := components.State.Get(owner)
	anim := components.Animation.Get(owner)

	window, attacking := cfg.AttackHitboxFrames[state.CurrentState]
	if !attacking || owner.HasComponent(components.Death) {
		despawnHitbox(ecs, melee)
		melee.HasSpawnedHitbox = false
		return
	}

	frame := anim.Cursor.Frame()
	if frame < window.From || frame > window.To {
		despawnHitbox(ecs, melee)
		return
	}

	if melee.ActiveHitbox == nil {
		if melee.HasSpawnedHitbox {
			return // this swing's window was already served
		}
		melee.ActiveHitbox = spawnHitbox(ecs, owner, state.CurrentState)
		melee.HasSpawnedHitbox = true
	}

	hitboxEntry := melee.ActiveHitbox
	hitboxObj := components.Object.Get(hitboxEntry).Object
	ownerObj := components.Object.Get(owner).Object
	positionHitbox(hitboxObj, ownerObj, anim.FacingRight)
	hitboxObj.Update()

	applyHits(hitboxEntry, hitboxObj, ownerObj, targetTagFor(owner))
}

func targetTagFor(owner *donburi.Entry) string {
	if owner.HasComponent(components.Player) {
		return tags.ResolvEnemy
	}
	return tags.ResolvPlayer
}

func spawnHitbox(ecs *ecs.ECS, owner *donburi.Entry, attack cfg.StateID) *donburi.Entry {
	w := cfg.Combat.SlashHitboxWidth * float64(cfg.C.Scale)
	h := cfg.Combat.SlashHitboxHeight * float64(cfg.C.Scale)

	damage := cfg.Player.AttackDamage
	knockback := cfg.Combat.PlayerKnockback
	if owner.HasComponent(components.Enemy) {
		tuning := components.Enemy.Get(owner).TypeConfig
		damage = tuning.Damage
		knockback = tuning.Knockback
	}

	entry := archetypes.Hitbox.Spawn(ecs)
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvHitbox)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Hitbox.SetValue(entry, components.HitboxData{
		OwnerEntity: owner,
		Attack:      attack,
		Damage:      damage,
		Knockback:   knockback,
		HitEntities: map[*donburi.Entry]bool{},
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}

// positionHitbox keeps the box vertically centered on the attacker and
// flush against its leading edge.
func positionHitbox(hitbox, owner *resolv.Object, facingRight bool) {
	hitbox.Y = owner.Y + owner.H/2 - hitbox.H/2
	if facingRight {
		hitbox.X = owner.X + owner.W
	} else {
		hitbox.X = owner.X - hitbox.W
	}
}

func applyHits(hitboxEntry *donburi.Entry, hitboxObj, ownerObj *resolv.Object, targetTag string) {
	check := hitboxObj.Check(0, 0, targetTag)
	if check == nil {
		return
	}
	hitbox := components.Hitbox.Get(hitboxEntry)

	for _, victimObj := range check.Objects {
		if !overlaps(hitboxObj, victimObj) {
			continue
		}
		victim, ok := victimObj.Data.(*donburi.Entry)
		if !ok || !victim.Valid() {
			continue
		}
		if !shouldHitTarget(hitbox, victim) {
			continue
		}
		hitbox.HitEntities[victim] = true

		knockX := hitbox.Knockback
		if victimObj.X+victimObj.W/2 < ownerObj.X+ownerObj.W/2 {
			knockX = -knockX
		}
		victim.AddComponent(components.DamageEvent)
		components.DamageEvent.SetValue(victim, components.DamageEventData{
			Amount:     hitbox.Damage,
			KnockbackX: knockX,
			KnockbackY: -cfg.Combat.KnockbackUpward,
			Heavy:      victim.HasComponent(components.Player),
		})
	}
}

func shouldHitTarget(hitbox *components.HitboxData, victim *donburi.Entry) bool {
	if victim == hitbox.OwnerEntity || hitbox.HitEntities[victim] {
		return false
	}
	if victim.HasComponent(components.Death) || victim.HasComponent(components.DamageEvent) {
		return false
	}
	if victim.HasComponent(components.Effects) &&
		components.Effects.Get(victim).Has(components.EffectInvulnerable) {
		return false
	}
	return true
}

func despawnHitbox(ecs *ecs.ECS, melee *components.MeleeAttackData) {
	if melee.ActiveHitbox == nil {
		return
	}
	entry := melee.ActiveHitbox
	melee.ActiveHitbox = nil
	if !entry.Valid() {
		return
	}
	removeFromSpace(ecs, entry)
	ecs.World.Remove(entry.Entity())
}
