package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector
	SpawnX    float64 // respawn position in world pixels
	SpawnY    float64
	Collected int // pickups gathered this run
}

var Player = donburi.NewComponentType[PlayerData]()
