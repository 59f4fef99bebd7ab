package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to an entity for one tick when something hit
// it. The damage system consumes and removes it.
type DamageEventData struct {
	Amount     int
	KnockbackX float64
	KnockbackY float64
	Heavy      bool // heavy hits shake the screen
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
