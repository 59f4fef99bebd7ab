package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

var movingBodies = donburi.NewQuery(filter.Contains(
	components.Physics,
	components.Object,
))

// UpdateCollisions moves every physics body by its current speed, resolving
// against solids and one-way platforms one axis at a time.
func UpdateCollisions(ecs *ecs.ECS) {
	// Collect first; attaching a damage event mid-iteration would move the
	// entry between archetypes.
	var bodies []*donburi.Entry
	movingBodies.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, e)
	})
	for _, e := range bodies {
		if e.HasComponent(components.Death) {
			continue
		}
		moveBody(ecs, e)
	}
}

func moveBody(ecs *ecs.ECS, e *donburi.Entry) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	dx := physics.SpeedX * cfg.TimeStep
	dy := physics.SpeedY * cfg.TimeStep

	dx = resolveHorizontal(obj, physics, dx)
	obj.X += dx

	dy = resolveVertical(obj, physics, dy)
	obj.Y += dy

	clampToLevel(ecs, e, obj, physics)
	releaseIgnoredPlatform(obj, physics)
	checkDamageTiles(e, obj)

	obj.Update()
}

// resolveHorizontal stops movement into a solid the body actually overlaps
// vertically, snapping flush against it. Check results are cell-based, so
// every candidate is filtered against the real movement direction.
func resolveHorizontal(obj *resolv.Object, physics *components.PhysicsData, dx float64) float64 {
	if dx == 0 {
		return 0
	}
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		return dx
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.Y+obj.H <= solid.Y || obj.Y >= solid.Y+solid.H {
			continue
		}
		var gap float64
		if dx > 0 {
			gap = solid.X - (obj.X + obj.W)
		} else {
			gap = (solid.X + solid.W) - obj.X
		}
		if (dx > 0 && (gap < 0 || gap > dx)) || (dx < 0 && (gap > 0 || gap < dx)) {
			continue
		}
		physics.SpeedX = 0
		return gap
	}
	return dx
}

func resolveVertical(obj *resolv.Object, physics *components.PhysicsData, dy float64) float64 {
	if dy < 0 {
		return resolveCeiling(obj, physics, dy)
	}
	return resolveFloor(obj, physics, dy)
}

func resolveCeiling(obj *resolv.Object, physics *components.PhysicsData, dy float64) float64 {
	check := obj.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		return dy
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.X+obj.W <= solid.X || obj.X >= solid.X+solid.W {
			continue
		}
		rise := (solid.Y + solid.H) - obj.Y
		if rise > 0 || rise < dy {
			continue // beside or out of reach, not a ceiling in the path
		}
		physics.SpeedY = 0
		return rise
	}
	return dy
}

// resolveFloor lands the body on solids and, when falling from above, on
// one-way platforms. OnGround is rebuilt from scratch every pass.
func resolveFloor(obj *resolv.Object, physics *components.PhysicsData, dy float64) float64 {
	physics.OnGround = nil

	probe := dy
	if probe < cfg.Physics.PlatformFootDepth {
		probe = cfg.Physics.PlatformFootDepth
	}
	check := obj.Check(0, probe, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return dy
	}

	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		if platform == physics.IgnorePlatform {
			continue
		}
		if obj.X+obj.W <= platform.X || obj.X >= platform.X+platform.W {
			continue
		}
		// Only land when falling onto the platform's top edge, within this
		// step's reach.
		gap := platform.Y - obj.Bottom()
		if physics.SpeedY < 0 || gap > probe || gap < -(cfg.Physics.PlatformFootDepth+2) {
			continue
		}
		physics.OnGround = platform
		physics.SpeedY = 0
		physics.WallSliding = nil
		return gap
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if obj.X+obj.W <= solid.X || obj.X >= solid.X+solid.W {
			continue
		}
		landing := solid.Y - obj.Bottom()
		if landing < -0.5 || landing > probe {
			continue // a wall beside us, or ground not yet in reach
		}
		physics.OnGround = solid
		physics.SpeedY = 0
		physics.WallSliding = nil
		return landing
	}

	return dy
}

// releaseIgnoredPlatform forgets a drop-through target once the body has
// cleared it, so it collides normally next time.
func releaseIgnoredPlatform(obj *resolv.Object, physics *components.PhysicsData) {
	if physics.IgnorePlatform == nil {
		return
	}
	target := physics.IgnorePlatform
	if obj.Y > target.Y+target.H || obj.Bottom() < target.Y {
		if check := obj.Check(0, cfg.Physics.PlatformFootDepth, tags.ResolvPlatform); check == nil || !containsObject(check.Objects, target) {
			physics.IgnorePlatform = nil
		}
	}
}

// overlaps reports a real rectangle intersection; Check results are only
// cell-level candidates.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func containsObject(objs []*resolv.Object, target *resolv.Object) bool {
	for _, o := range objs {
		if o == target {
			return true
		}
	}
	return false
}

// clampToLevel keeps bodies inside the level's horizontal bounds and kills
// anything that falls out of the bottom.
func clampToLevel(ecs *ecs.ECS, e *donburi.Entry, obj *resolv.Object, physics *components.PhysicsData) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	if obj.X < 0 {
		obj.X = 0
		if physics.SpeedX < 0 {
			physics.SpeedX = 0
		}
	}
	if maxX := float64(level.PixelWidth()) - obj.W; obj.X > maxX {
		obj.X = maxX
		if physics.SpeedX > 0 {
			physics.SpeedX = 0
		}
	}

	if obj.Y > float64(level.PixelHeight()) && e.HasComponent(components.Health) && !e.HasComponent(components.DamageEvent) {
		e.AddComponent(components.DamageEvent)
		components.DamageEvent.SetValue(e, components.DamageEventData{
			Amount: components.Health.Get(e).Current,
		})
	}
}

// checkDamageTiles hands a damage event to anything standing in a hazard.
// The damage system takes care of invulnerability windows.
func checkDamageTiles(e *donburi.Entry, obj *resolv.Object) {
	if !e.HasComponent(components.Health) || e.HasComponent(components.DamageEvent) {
		return
	}
	check := obj.Check(0, 0, tags.ResolvDamage)
	if check == nil {
		return
	}
	var hazard *resolv.Object
	for _, candidate := range check.Objects {
		if overlaps(obj, candidate) {
			hazard = candidate
			break
		}
	}
	if hazard == nil {
		return
	}

	// Knock away from the hazard center.
	knockX := cfg.Combat.PlayerKnockback
	if obj.X+obj.W/2 < hazard.X+hazard.W/2 {
		knockX = -knockX
	}
	e.AddComponent(components.DamageEvent)
	components.DamageEvent.SetValue(e, components.DamageEventData{
		Amount:     1,
		KnockbackX: knockX,
		KnockbackY: -cfg.Combat.KnockbackUpward,
	})
}
