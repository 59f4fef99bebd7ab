package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Kind  string  // "bandage" heals on pickup
	BaseY float64 // anchor for the bob tween
	Heal  int
}

var Collectible = donburi.NewComponentType[CollectibleData]()
