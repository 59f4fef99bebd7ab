package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/config"
)

type EnemyData struct {
	TypeName   string
	TypeConfig *config.EnemyTypeConfig

	// AI state
	PatrolLeft  float64 // left boundary for patrol, world pixels
	PatrolRight float64
	HomeX       float64 // spawn anchor the patrol is centered on
	HomeY       float64

	// Combat
	AttackCooldown float64 // seconds until the next attack may start
	ActiveHitbox   *donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()
