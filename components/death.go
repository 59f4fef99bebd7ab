package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence. Enemies
// are removed when Timer runs out; the player instead waits for a respawn
// request.
type DeathData struct {
	Timer            float64
	RespawnRequested bool
}

var Death = donburi.NewComponentType[DeathData]()
