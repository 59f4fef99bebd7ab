package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(ecs, e, input)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData) {
	state := components.State.Get(playerEntry)
	state.Elapsed += cfg.TimeStep

	// Dead players only wait for a respawn request.
	if playerEntry.HasComponent(components.Death) {
		anim := components.Animation.Get(playerEntry)
		if anim.Finished() && input.JustPressed(cfg.ActionJump) {
			components.Death.Get(playerEntry).RespawnRequested = true
		}
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	melee := components.MeleeAttack.Get(playerEntry)
	effects := components.Effects.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	switch state.CurrentState {
	case cfg.Spawn:
		// Input ignored until the materialize animation completes.
		physics.SpeedX = 0
		if anim.Finished() && state.Elapsed >= cfg.Player.SpawnMinDuration {
			effects.Clear(components.EffectSpawnLock)
			transitionToMovement(state, physics, input)
		}

	case cfg.Idle, cfg.Walk:
		applyGroundMovement(player, physics, input)

		switch {
		case tryStartAttack(state, melee, effects, input):
		case tryStartRoll(state, player, physics, effects, input):
		case tryGroundJump(state, physics, input):
		default:
			transitionToMovement(state, physics, input)
		}

	case cfg.Jump:
		applyAirMovement(player, physics, input)
		switch {
		case tryDoubleJump(state, physics, input):
		case tryWallEngage(state, player, physics, effects, obj, input):
		case tryLedgeGrab(state, player, physics, obj, input):
		case physics.SpeedY > 0:
			state.TransitionTo(cfg.Fall)
		}

	case cfg.DoubleJump:
		applyAirMovement(player, physics, input)
		switch {
		case tryWallEngage(state, player, physics, effects, obj, input):
		case tryLedgeGrab(state, player, physics, obj, input):
		case physics.SpeedY > 0:
			state.TransitionTo(cfg.Fall)
		}

	case cfg.Fall:
		applyAirMovement(player, physics, input)
		switch {
		case physics.OnGround != nil:
			physics.JumpsUsed = 0
			transitionToMovement(state, physics, input)
		case tryDoubleJump(state, physics, input):
		case tryWallEngage(state, player, physics, effects, obj, input):
		case tryLedgeGrab(state, player, physics, obj, input):
		}

	case cfg.Attack1:
		applyAttackMovement(physics, input, cfg.Player.Attack1SpeedScale)
		if input.JustPressed(cfg.ActionAttack) {
			melee.BufferedAttack = true
		}
		if anim.Finished() {
			if melee.BufferedAttack && effects.Has(components.EffectComboWindow) {
				chainAttack(state, melee, anim, cfg.Attack2)
			} else {
				finishAttack(state, melee, physics, effects, input)
			}
		}

	case cfg.Attack2:
		applyAttackMovement(physics, input, cfg.Player.Attack2SpeedScale)
		if anim.Finished() {
			finishAttack(state, melee, physics, effects, input)
		}

	case cfg.Roll:
		physics.SpeedX = player.Direction.X * cfg.Player.RollSpeed
		if state.Elapsed >= cfg.Player.RollDuration {
			effects.Clear(components.EffectInvulnerable)
			transitionToMovement(state, physics, input)
		}

	case cfg.Hit:
		// Knockback decays through friction; control returns when the hit
		// animation ends.
		if anim.Finished() {
			transitionToMovement(state, physics, input)
		}

	case cfg.WallHold:
		updateWallHold(state, player, physics, effects, obj, input)

	case cfg.WallSlide:
		updateWallSlide(state, player, physics, obj, input)

	case cfg.LedgeGrab:
		updateLedgeGrab(state, player, physics, input)

	default:
		transitionToMovement(state, physics, input)
	}

	// Pick up collectibles by overlap, in any controllable state.
	collectPickups(ecs, playerEntry, player, obj)
}

// applyGroundMovement sets horizontal speed straight from the input axis and
// turns the player to face travel direction.
func applyGroundMovement(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	if input.AxisX != 0 {
		physics.SpeedX = input.AxisX * cfg.Player.MoveSpeed
		player.Direction.X = input.AxisX
	}
}

// applyAirMovement is identical to ground movement; air control is full.
func applyAirMovement(player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	if input.AxisX != 0 {
		physics.SpeedX = input.AxisX * cfg.Player.MoveSpeed
		player.Direction.X = input.AxisX
	}
}

// applyAttackMovement damps horizontal input while a swing plays. Facing is
// locked for the whole attack.
func applyAttackMovement(physics *components.PhysicsData, input *components.InputData, scale float64) {
	if input.AxisX != 0 {
		physics.SpeedX = input.AxisX * cfg.Player.MoveSpeed * scale
	}
}

func tryStartAttack(state *components.StateData, melee *components.MeleeAttackData, effects *components.EffectsData, input *components.InputData) bool {
	if !input.JustPressed(cfg.ActionAttack) || effects.Has(components.EffectAttackCooldown) {
		return false
	}
	if !state.TransitionTo(cfg.Attack1) {
		return false
	}
	melee.ComboStep = 1
	melee.BufferedAttack = false
	melee.HasSpawnedHitbox = false
	effects.Apply(components.EffectComboWindow, cfg.Player.ComboWindow)
	return true
}

func chainAttack(state *components.StateData, melee *components.MeleeAttackData, anim *components.AnimationData, next cfg.StateID) {
	if !state.TransitionTo(next) {
		return
	}
	melee.ComboStep = 2
	melee.BufferedAttack = false
	melee.HasSpawnedHitbox = false
	anim.SetState(next)
}

func finishAttack(state *components.StateData, melee *components.MeleeAttackData, physics *components.PhysicsData, effects *components.EffectsData, input *components.InputData) {
	melee.ComboStep = 0
	melee.BufferedAttack = false
	melee.HasSpawnedHitbox = false
	effects.Clear(components.EffectComboWindow)
	effects.Apply(components.EffectAttackCooldown, cfg.Player.AttackCooldown)
	transitionToMovement(state, physics, input)
}

func tryStartRoll(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, effects *components.EffectsData, input *components.InputData) bool {
	if !input.JustPressed(cfg.ActionRoll) || effects.Has(components.EffectRollCooldown) {
		return false
	}
	if physics.OnGround == nil {
		return false
	}
	if !state.TransitionTo(cfg.Roll) {
		return false
	}
	if input.AxisX != 0 {
		player.Direction.X = input.AxisX
	}
	effects.Apply(components.EffectInvulnerable, cfg.Player.RollDuration)
	effects.Apply(components.EffectRollCooldown, cfg.Player.RollCooldown)
	return true
}

func tryGroundJump(state *components.StateData, physics *components.PhysicsData, input *components.InputData) bool {
	if !input.JustPressed(cfg.ActionJump) || physics.OnGround == nil {
		return false
	}

	// Down+jump drops through a one-way platform instead of jumping.
	if input.Pressed(cfg.ActionMoveDown) && physics.OnGround.HasTags(tags.ResolvPlatform) {
		physics.IgnorePlatform = physics.OnGround
		return state.TransitionTo(cfg.Fall)
	}

	if !state.TransitionTo(cfg.Jump) {
		return false
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
	physics.JumpsUsed = 1
	return true
}

func tryDoubleJump(state *components.StateData, physics *components.PhysicsData, input *components.InputData) bool {
	if !input.JustPressed(cfg.ActionJump) || physics.JumpsUsed >= cfg.Player.MaxJumps {
		return false
	}
	if !state.TransitionTo(cfg.DoubleJump) {
		return false
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	// An air jump after walking off a ledge still spends both jumps.
	physics.JumpsUsed = cfg.Player.MaxJumps
	return true
}

// wallAhead returns the solid the player is pressing against, or nil.
func wallAhead(obj *resolv.Object, dir float64) *resolv.Object {
	if dir == 0 {
		return nil
	}
	check := obj.Check(dir*2, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		// Require overlap along the body's vertical extent, not a corner
		// clip, and the wall within grabbing distance of the leading edge.
		if obj.Y+obj.H <= solid.Y || obj.Y >= solid.Y+solid.H {
			continue
		}
		if dir > 0 && solid.X-(obj.X+obj.W) > 3 {
			continue
		}
		if dir < 0 && obj.X-(solid.X+solid.W) > 3 {
			continue
		}
		return solid
	}
	return nil
}

// ledgeAt reports a grabbable ledge: wall solid at body height but clear at
// head height.
func ledgeAt(obj *resolv.Object, dir float64) bool {
	if dir == 0 {
		return false
	}
	if obj.Check(dir*2, 0, tags.ResolvSolid) == nil {
		return false
	}
	headClearance := obj.H * 0.6
	return obj.Check(dir*2, -headClearance, tags.ResolvSolid) == nil
}

func tryWallEngage(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, effects *components.EffectsData, obj *resolv.Object, input *components.InputData) bool {
	if physics.OnGround != nil || physics.SpeedY < 0 {
		return false
	}
	wall := wallAhead(obj, input.AxisX)
	if wall == nil {
		return false
	}
	if ledgeAt(obj, input.AxisX) {
		return false // ledge grab takes priority
	}
	if !state.TransitionTo(cfg.WallHold) {
		return false
	}
	player.Direction.X = input.AxisX
	physics.WallSliding = wall
	physics.SpeedY = 0
	physics.JumpsUsed = 0
	effects.ApplyWithExit(components.EffectWallHoldGrace, cfg.Player.WallHoldGrace, cfg.WallSlide)
	return true
}

func tryLedgeGrab(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object, input *components.InputData) bool {
	if physics.OnGround != nil || physics.SpeedY < 0 {
		return false
	}
	if !ledgeAt(obj, input.AxisX) {
		return false
	}
	if !state.TransitionTo(cfg.LedgeGrab) {
		return false
	}
	player.Direction.X = input.AxisX
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.JumpsUsed = 0
	return true
}

func updateWallHold(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, effects *components.EffectsData, obj *resolv.Object, input *components.InputData) {
	// Grace expiry transitions to WallSlide via the effects system; here we
	// handle the manual exits.
	physics.SpeedY = 0

	if tryWallJump(state, player, physics, effects, input) {
		return
	}
	if physics.OnGround != nil {
		releaseWall(physics, effects)
		transitionToMovement(state, physics, input)
		return
	}
	if input.AxisX != player.Direction.X || wallAhead(obj, player.Direction.X) == nil {
		releaseWall(physics, effects)
		state.TransitionTo(cfg.Fall)
	}
}

func updateWallSlide(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, obj *resolv.Object, input *components.InputData) {
	// Slide speed is capped by the physics pass while WallSliding is set.
	if tryWallJump(state, player, physics, nil, input) {
		return
	}
	if physics.OnGround != nil {
		physics.WallSliding = nil
		transitionToMovement(state, physics, input)
		return
	}
	if input.AxisX != player.Direction.X || wallAhead(obj, player.Direction.X) == nil {
		physics.WallSliding = nil
		state.TransitionTo(cfg.Fall)
	}
}

func tryWallJump(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, effects *components.EffectsData, input *components.InputData) bool {
	if !input.JustPressed(cfg.ActionJump) {
		return false
	}
	if !state.TransitionTo(cfg.Jump) {
		return false
	}
	// Kick away from the wall.
	player.Direction.X = -player.Direction.X
	physics.SpeedX = player.Direction.X * cfg.Player.WallJumpSpeedX
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.WallSliding = nil
	physics.JumpsUsed = 1
	if effects != nil {
		effects.Clear(components.EffectWallHoldGrace)
	}
	return true
}

func updateLedgeGrab(state *components.StateData, player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	// Hang in place; gravity is cancelled every tick while grabbing.
	physics.SpeedX = 0
	physics.SpeedY = 0

	if input.JustPressed(cfg.ActionJump) {
		if state.TransitionTo(cfg.Jump) {
			physics.SpeedY = -cfg.Player.JumpSpeed
			physics.JumpsUsed = 1
		}
		return
	}
	if input.Pressed(cfg.ActionMoveDown) {
		state.TransitionTo(cfg.Fall)
	}
}

func releaseWall(physics *components.PhysicsData, effects *components.EffectsData) {
	physics.WallSliding = nil
	effects.Clear(components.EffectWallHoldGrace)
}

// transitionToMovement drops the player into the right neutral state for
// its physical situation.
func transitionToMovement(state *components.StateData, physics *components.PhysicsData, input *components.InputData) {
	switch {
	case physics.OnGround == nil && physics.SpeedY > 0:
		state.TransitionTo(cfg.Fall)
	case physics.OnGround == nil:
		state.TransitionTo(cfg.Jump)
	case input != nil && input.AxisX != 0:
		state.TransitionTo(cfg.Walk)
	default:
		state.TransitionTo(cfg.Idle)
	}
}

func collectPickups(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, obj *resolv.Object) {
	check := obj.Check(0, 0, tags.ResolvCollectible)
	if check == nil {
		return
	}
	for _, hit := range check.Objects {
		if !overlaps(obj, hit) {
			continue
		}
		pickupEntry, ok := hit.Data.(*donburi.Entry)
		if !ok || !pickupEntry.Valid() || !pickupEntry.HasComponent(components.Collectible) {
			continue
		}
		pickup := components.Collectible.Get(pickupEntry)
		if pickup.Heal > 0 {
			components.Health.Get(playerEntry).Heal(pickup.Heal)
		}
		player.Collected++
		removeFromSpace(ecs, pickupEntry)
		ecs.World.Remove(pickupEntry.Entity())
	}
}

// removeFromSpace detaches an entity's collision object from the shared
// space before the entity is destroyed.
func removeFromSpace(ecs *ecs.ECS, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
}
