package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

func countHitboxes(tw *testWorld) int {
	n := 0
	components.Hitbox.Each(tw.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// disarm turns off an enemy's AI movement so it stands still as a target.
func disarm(enemy *donburi.Entry) {
	tuning := components.Enemy.Get(enemy).TypeConfig
	tuning.ChaseRange = 0
	tuning.PatrolSpeed = 0
}

func TestSlashDamagesAdjacentEnemyOnce(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 2048, 32)
	player := tw.spawnPlayer(t, 100, 200)
	enemy := tw.spawnEnemy(t, 120, 200)
	disarm(enemy)

	before := components.Health.Get(enemy).Current

	tw.press(cfg.ActionAttack)
	tw.tick()
	if got := stateOf(player); got != cfg.Attack1 {
		t.Fatalf("state = %v after attack press, want Attack1", got)
	}

	sawHitbox := false
	hitTick := -1
	for i := 0; i < 40; i++ {
		tw.tick()
		if countHitboxes(tw) > 0 {
			sawHitbox = true
		}
		if hitTick < 0 && components.Health.Get(enemy).Current < before {
			hitTick = i
			if got := components.Physics.Get(enemy).SpeedX; got <= 0 {
				t.Fatalf("enemy SpeedX = %.1f after a hit from the left, want positive", got)
			}
			if got := stateOf(enemy); got != cfg.Hit {
				t.Fatalf("enemy state = %v after taking a slash, want Hit", got)
			}
		}
	}

	if !sawHitbox {
		t.Fatal("no hitbox spawned during the attack's active frames")
	}
	if hitTick < 0 {
		t.Fatal("adjacent enemy took no damage from the slash")
	}
	if got := components.Health.Get(enemy).Current; got != before-1 {
		t.Fatalf("enemy health = %d after one swing, want %d (one hit per swing)", got, before-1)
	}
	if got := countHitboxes(tw); got != 0 {
		t.Fatalf("%d hitboxes alive after the swing ended, want 0", got)
	}
}

func TestInvulnerabilityBlocksSlash(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 2048, 32)
	tw.spawnPlayer(t, 100, 200)
	enemy := tw.spawnEnemy(t, 120, 200)
	disarm(enemy)

	components.Effects.Get(enemy).Apply(components.EffectInvulnerable, 10)
	before := components.Health.Get(enemy).Current

	tw.press(cfg.ActionAttack)
	for i := 0; i < 40; i++ {
		tw.tick()
	}

	if got := components.Health.Get(enemy).Current; got != before {
		t.Fatalf("enemy health = %d after slashing an invulnerable target, want %d", got, before)
	}
	if got := stateOf(enemy); got == cfg.Hit {
		t.Fatal("invulnerable enemy was staggered by a slash")
	}
}

func TestSecondSwingHitsAgain(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 200, 2048, 32)
	player := tw.spawnPlayer(t, 100, 200)
	enemy := tw.spawnEnemy(t, 120, 200)
	disarm(enemy)

	before := components.Health.Get(enemy).Current

	tw.press(cfg.ActionAttack)
	for i := 0; i < 40; i++ {
		tw.tick()
	}
	if got := components.Health.Get(enemy).Current; got != before-1 {
		t.Fatalf("enemy health = %d after first swing, want %d", got, before-1)
	}

	// Wait out the target's invulnerability and the attack cooldown, then
	// swing again.
	for i := 0; i < 60; i++ {
		tw.tick()
	}
	if got := stateOf(player); got != cfg.Idle {
		t.Fatalf("player state = %v between swings, want Idle", got)
	}

	tw.press(cfg.ActionAttack)
	for i := 0; i < 40; i++ {
		tw.tick()
	}
	if got := components.Health.Get(enemy).Current; got != before-2 {
		t.Fatalf("enemy health = %d after second swing, want %d", got, before-2)
	}
}
