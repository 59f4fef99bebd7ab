package systems

import (
	"testing"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

func TestGroundJump(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)

	if got := stateOf(player); got != cfg.Idle {
		t.Fatalf("player did not settle into idle, got %v", got)
	}

	tw.press(cfg.ActionJump)
	tw.tick()

	if got := stateOf(player); got != cfg.Jump {
		t.Fatalf("state = %v, want jump", got)
	}
	physics := components.Physics.Get(player)
	if physics.SpeedY != -cfg.Player.JumpSpeed {
		t.Errorf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
	}
	if physics.JumpsUsed != 1 {
		t.Errorf("JumpsUsed = %d, want 1", physics.JumpsUsed)
	}
}

func TestDoubleJumpSpendsBothJumps(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)
	physics := components.Physics.Get(player)

	tw.press(cfg.ActionJump)
	tw.tick()
	tw.press(cfg.ActionJump)
	tw.tick()

	if got := stateOf(player); got != cfg.DoubleJump {
		t.Fatalf("state = %v, want double_jump", got)
	}
	if physics.JumpsUsed != cfg.Player.MaxJumps {
		t.Errorf("JumpsUsed = %d, want %d", physics.JumpsUsed, cfg.Player.MaxJumps)
	}

	// A third press must not produce another jump.
	speedBefore := physics.SpeedY
	tw.press(cfg.ActionJump)
	tw.tick()
	if physics.SpeedY < speedBefore {
		t.Error("third jump press changed vertical speed upward")
	}
}

func TestLandingResetsJumps(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)
	physics := components.Physics.Get(player)

	tw.press(cfg.ActionJump)
	tw.tick()

	for i := 0; i < 300 && physics.OnGround == nil; i++ {
		tw.tick()
	}
	if physics.OnGround == nil {
		t.Fatal("player never landed")
	}
	tw.tick()

	if physics.JumpsUsed != 0 {
		t.Errorf("JumpsUsed after landing = %d, want 0", physics.JumpsUsed)
	}
	if got := stateOf(player); got != cfg.Idle {
		t.Errorf("state after landing = %v, want idle", got)
	}
}

func TestAirJumpAfterWalkingOffLedge(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)
	physics := components.Physics.Get(player)

	// Force airborne without jumping.
	state := components.State.Get(player)
	state.TransitionTo(cfg.Fall)
	physics.OnGround = nil
	components.Object.Get(player).Y -= 60
	components.Object.Get(player).Update()

	tw.press(cfg.ActionJump)
	tw.tick()

	if got := stateOf(player); got != cfg.DoubleJump {
		t.Fatalf("state = %v, want double_jump", got)
	}
	if physics.JumpsUsed != cfg.Player.MaxJumps {
		t.Errorf("air jump must spend both jumps, JumpsUsed = %d", physics.JumpsUsed)
	}
}

func TestAttackComboChain(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)

	tw.press(cfg.ActionAttack)
	tw.tick()
	if got := stateOf(player); got != cfg.Attack1 {
		t.Fatalf("state = %v, want attack1", got)
	}

	// Buffer the follow-up mid swing.
	tw.press(cfg.ActionAttack)
	tw.tick()
	if !components.MeleeAttack.Get(player).BufferedAttack {
		t.Fatal("attack press during swing was not buffered")
	}

	for i := 0; i < 60 && stateOf(player) == cfg.Attack1; i++ {
		tw.tick()
	}
	if got := stateOf(player); got != cfg.Attack2 {
		t.Fatalf("state after first swing = %v, want attack2", got)
	}

	for i := 0; i < 60 && stateOf(player) == cfg.Attack2; i++ {
		tw.tick()
	}
	if got := stateOf(player); got != cfg.Idle {
		t.Fatalf("state after combo = %v, want idle", got)
	}
	if !components.Effects.Get(player).Has(components.EffectAttackCooldown) {
		t.Error("attack cooldown not applied after combo")
	}
}

func TestAttackWithoutChainReturnsToIdle(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)

	tw.press(cfg.ActionAttack)
	tw.tick()
	for i := 0; i < 60 && stateOf(player) == cfg.Attack1; i++ {
		tw.tick()
	}
	if got := stateOf(player); got != cfg.Idle {
		t.Fatalf("state = %v, want idle", got)
	}
}

func TestRollInvulnerabilityAndCooldown(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 400, 2000, 32)
	player := tw.spawnPlayer(t, 100, 400)
	effects := components.Effects.Get(player)

	tw.press(cfg.ActionRoll)
	tw.tick()
	if got := stateOf(player); got != cfg.Roll {
		t.Fatalf("state = %v, want roll", got)
	}
	if !effects.Has(components.EffectInvulnerable) {
		t.Error("roll did not grant invulnerability")
	}
	if !effects.Has(components.EffectRollCooldown) {
		t.Error("roll did not start its cooldown")
	}

	for i := 0; i < 120 && stateOf(player) == cfg.Roll; i++ {
		tw.tick()
	}
	if got := stateOf(player); got == cfg.Roll {
		t.Fatal("roll never ended")
	}
	if effects.Has(components.EffectInvulnerable) {
		t.Error("invulnerability survived the roll")
	}

	// Still cooling down, a second roll is refused.
	tw.press(cfg.ActionRoll)
	tw.tick()
	if got := stateOf(player); got == cfg.Roll {
		t.Error("roll restarted during cooldown")
	}
}

func TestDropThroughPlatform(t *testing.T) {
	tw := newTestWorld(t)
	platform := tw.addPlatform(0, 200, 640, 8)
	player := tw.spawnPlayer(t, 100, 200)
	physics := components.Physics.Get(player)

	if physics.OnGround != platform {
		t.Fatalf("player not standing on the platform")
	}

	tw.press(cfg.ActionMoveDown, cfg.ActionJump)
	tw.tick()

	if got := stateOf(player); got != cfg.Fall {
		t.Fatalf("state = %v, want fall", got)
	}
	if physics.IgnorePlatform != platform {
		t.Fatal("platform was not marked for drop-through")
	}

	startY := components.Object.Get(player).Y
	for i := 0; i < 60; i++ {
		tw.tick()
	}
	if got := components.Object.Get(player).Y; got <= startY {
		t.Errorf("player did not fall through: y %v -> %v", startY, got)
	}
}

func TestSpawnLocksInput(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)

	state := components.State.Get(player)
	state.TransitionTo(cfg.Death)
	state.TransitionTo(cfg.Spawn)
	anim := components.Animation.Get(player)
	anim.SetState(cfg.Spawn)

	tw.press(cfg.ActionJump)
	tw.tick()
	if got := stateOf(player); got != cfg.Spawn {
		t.Fatalf("spawn state reacted to input, got %v", got)
	}

	// Spawn exits only after both the animation and the minimum duration.
	for i := 0; i < 120 && stateOf(player) == cfg.Spawn; i++ {
		tw.tick()
	}
	if got := stateOf(player); got == cfg.Spawn {
		t.Fatal("spawn never completed")
	}
	if secs := components.State.Get(player).Elapsed; secs < 0 {
		t.Fatalf("elapsed went negative: %v", secs)
	}
}

func TestDeathAndRespawn(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 640, 32)
	player := tw.spawnPlayer(t, 100, 200)

	// Lethal hit.
	health := components.Health.Get(player)
	health.Current = 1
	player.AddComponent(components.DamageEvent)
	components.DamageEvent.SetValue(player, components.DamageEventData{Amount: 1})
	tw.tick()

	if !player.HasComponent(components.Death) {
		t.Fatal("lethal damage did not start the death sequence")
	}
	if got := stateOf(player); got != cfg.Death {
		t.Fatalf("state = %v, want death", got)
	}

	// Let the death animation finish, then request respawn.
	for i := 0; i < 60; i++ {
		tw.tick()
	}
	tw.press(cfg.ActionJump)
	tw.tick()
	tw.tick()

	if player.HasComponent(components.Death) {
		t.Fatal("respawn did not clear the death marker")
	}
	if got := stateOf(player); got != cfg.Spawn {
		t.Fatalf("state after respawn = %v, want spawn", got)
	}
	if health.Current != health.Max {
		t.Errorf("health after respawn = %d, want %d", health.Current, health.Max)
	}
}
