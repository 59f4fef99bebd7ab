package components

import "github.com/yohamta/donburi"

// ChestPhase tracks a chest through its open sequence. Chests keep their
// phase here instead of the shared state machine.
type ChestPhase int

const (
	ChestClosed ChestPhase = iota
	ChestOpening
	ChestOpened
)

type ChestData struct {
	Kind  string // "basic" or "gold"
	Phase ChestPhase
	Timer float64 // seconds since the opening animation finished
}

var Chest = donburi.NewComponentType[ChestData]()
