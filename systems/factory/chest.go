package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

const chestSize = 16.0

// CreateChest spawns a closed chest at its placed position.
func CreateChest(e *ecs.ECS, registry *assets.Registry, kind string, x, y float64) (*donburi.Entry, error) {
	size := chestSize * float64(cfg.C.Scale)
	set, err := loadAnimationSet(registry, cfg.Chest.SheetPath, cfg.ChestBinding, int(size), int(size))
	if err != nil {
		return nil, err
	}

	chest := archetypes.Chest.Spawn(e)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvChest)
	obj.Data = chest
	components.Object.SetValue(chest, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	components.Chest.SetValue(chest, components.ChestData{
		Kind:  kind,
		Phase: components.ChestClosed,
	})
	components.Animation.SetValue(chest, components.AnimationData{
		Set:          set,
		Cursor:       set.NewCursor(cfg.Idle),
		CurrentState: cfg.Idle,
		FacingRight:  true,
		SheetPath:    cfg.Chest.SheetPath,
	})

	return chest, nil
}
