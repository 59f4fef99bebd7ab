package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/assets"
)

type LevelData struct {
	CurrentLevel *assets.Level
}

var Level = donburi.NewComponentType[LevelData]()
