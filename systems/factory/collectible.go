package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/tags"
)

const collectibleSize = 12.0

// healAmounts maps a pickup kind to its heal value. Unknown kinds are
// trophies only.
var healAmounts = map[string]int{
	"bandage": 1,
}

// CreateCollectible spawns a pickup bobbing around its placed position.
func CreateCollectible(e *ecs.ECS, registry *assets.Registry, kind string, x, y float64) (*donburi.Entry, error) {
	size := collectibleSize * float64(cfg.C.Scale)
	sheetPath := "collectibles/" + kind + ".json"
	set, err := loadAnimationSet(registry, sheetPath, cfg.CollectibleBinding, int(size), int(size))
	if err != nil {
		return nil, err
	}

	pickup := archetypes.Collectible.Spawn(e)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvCollectible)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	components.Collectible.SetValue(pickup, components.CollectibleData{
		Kind:  kind,
		BaseY: y,
		Heal:  healAmounts[kind],
	})
	components.Animation.SetValue(pickup, components.AnimationData{
		Set:          set,
		Cursor:       set.NewCursor(cfg.Idle),
		CurrentState: cfg.Idle,
		FacingRight:  true,
		SheetPath:    sheetPath,
	})

	// Bob phase: 0..1 over two seconds, looped by the objects system.
	tw := gween.NewSequence()
	tw.Add(gween.New(0, 1, 2, ease.Linear))
	components.Tween.Set(pickup, tw)

	return pickup, nil
}
