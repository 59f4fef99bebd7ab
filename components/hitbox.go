package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/config"
)

type HitboxData struct {
	OwnerEntity *donburi.Entry // the attacker that spawned this hitbox
	Attack      config.StateID // attack state the hitbox belongs to
	Damage      int
	Knockback   float64
	HitEntities map[*donburi.Entry]bool // already-hit victims, one hit per swing
}

var Hitbox = donburi.NewComponentType[HitboxData]()
