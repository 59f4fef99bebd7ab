package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

// UpdateChests runs the open-on-interact flow for level chests. Chests keep
// their phase in ChestData rather than the shared state machine, so this
// system also advances their frame cursors.
func UpdateChests(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerObj := components.Object.Get(playerEntry).Object

	tags.Chest.Each(ecs.World, func(e *donburi.Entry) {
		updateSingleChest(e, input, player, playerObj)
	})
}

func updateSingleChest(e *donburi.Entry, input *components.InputData, player *components.PlayerData, playerObj *resolv.Object) {
	chest := components.Chest.Get(e)
	anim := components.Animation.Get(e)
	obj := components.Object.Get(e).Object

	switch chest.Phase {
	case components.ChestClosed:
		dist := math.Abs((playerObj.X + playerObj.W/2) - (obj.X + obj.W/2))
		if dist <= cfg.Chest.InteractDistance && input.JustPressed(cfg.ActionMoveUp) {
			chest.Phase = components.ChestOpening
			anim.SetState(cfg.ChestOpening)
		}

	case components.ChestOpening:
		if anim.Finished() {
			chest.Timer += cfg.TimeStep
			if chest.Timer >= cfg.Chest.OpenDelay {
				chest.Phase = components.ChestOpened
				anim.SetState(cfg.ChestUsed)
				player.Collected += cfg.Chest.Rewards[chest.Kind]
			}
		}
	}

	anim.Cursor.Advance(cfg.TimeStep)
}
