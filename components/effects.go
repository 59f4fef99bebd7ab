package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/config"
)

// EffectKind identifies one timed effect on an entity.
type EffectKind int

const (
	EffectInvulnerable EffectKind = iota
	EffectComboWindow
	EffectRollCooldown
	EffectAttackCooldown
	EffectWallHoldGrace
	EffectSpawnLock
	effectKindCount
)

var effectKindNames = map[EffectKind]string{
	EffectInvulnerable:   "invulnerable",
	EffectComboWindow:    "combo_window",
	EffectRollCooldown:   "roll_cooldown",
	EffectAttackCooldown: "attack_cooldown",
	EffectWallHoldGrace:  "wall_hold_grace",
	EffectSpawnLock:      "spawn_lock",
}

func (k EffectKind) String() string {
	if s, ok := effectKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Effect is one running timer. OnExpire optionally names a state the entity
// should transition to when the timer runs out.
type Effect struct {
	Remaining float64
	OnExpire  config.StateID
}

// Expired describes an effect that just ran out this tick.
type Expired struct {
	Kind     EffectKind
	OnExpire config.StateID
}

// EffectsData is the single per-entity record of every active timed effect.
// All duration bookkeeping lives here; gameplay systems apply and query
// effects but never tick their own timers.
type EffectsData struct {
	active map[EffectKind]Effect
}

// Apply starts or refreshes an effect with no expiry action.
func (e *EffectsData) Apply(kind EffectKind, duration float64) {
	e.ApplyWithExit(kind, duration, config.StateNone)
}

// ApplyWithExit starts or refreshes an effect that requests a state
// transition when it expires.
func (e *EffectsData) ApplyWithExit(kind EffectKind, duration float64, onExpire config.StateID) {
	if duration <= 0 {
		return
	}
	if e.active == nil {
		e.active = make(map[EffectKind]Effect, int(effectKindCount))
	}
	e.active[kind] = Effect{Remaining: duration, OnExpire: onExpire}
}

// Has reports whether the effect is currently running.
func (e *EffectsData) Has(kind EffectKind) bool {
	_, ok := e.active[kind]
	return ok
}

// Remaining returns the seconds left on an effect, 0 when inactive.
func (e *EffectsData) Remaining(kind EffectKind) float64 {
	return e.active[kind].Remaining
}

// Clear cancels an effect without firing its expiry action.
func (e *EffectsData) Clear(kind EffectKind) {
	delete(e.active, kind)
}

// Tick advances every running effect and returns the ones that expired.
func (e *EffectsData) Tick(dt float64) []Expired {
	var out []Expired
	for kind, eff := range e.active {
		eff.Remaining -= dt
		if eff.Remaining <= 0 {
			delete(e.active, kind)
			out = append(out, Expired{Kind: kind, OnExpire: eff.OnExpire})
			continue
		}
		e.active[kind] = eff
	}
	return out
}

var Effects = donburi.NewComponentType[EffectsData]()
