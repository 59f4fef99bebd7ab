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
	"github.com/automoto/darkvania/logging"
	"github.com/automoto/darkvania/tags"
)

// CreateSpace builds the collision space sized to a level, with one cell
// per tile.
func CreateSpace(e *ecs.ECS, level *assets.Level) *donburi.Entry {
	spaceEntry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(level.PixelWidth(), level.PixelHeight(), level.TileSize, level.TileSize)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})
	return spaceEntry
}

// CreateLevel loads a map, registers it as the current level and builds its
// collision geometry. Horizontal runs of same-class tiles collapse into one
// object each.
func CreateLevel(e *ecs.ECS, registry *assets.Registry, mapPath string) (*donburi.Entry, *assets.Level, error) {
	level, err := assets.LoadLevel(registry.FS(), mapPath, cfg.C.Scale)
	if err != nil {
		return nil, nil, err
	}

	levelEntry := archetypes.Level.Spawn(e)
	components.Level.SetValue(levelEntry, components.LevelData{CurrentLevel: level})

	CreateSpace(e, level)
	buildCollisionGeometry(e, level)
	if err := spawnLevelObjects(e, registry, level); err != nil {
		return nil, nil, err
	}

	logging.L().WithField("map", mapPath).Info("level loaded")
	return levelEntry, level, nil
}

func buildCollisionGeometry(e *ecs.ECS, level *assets.Level) {
	ts := float64(level.TileSize)

	for ty := 0; ty < level.Rows; ty++ {
		tx := 0
		for tx < level.Cols {
			class := level.ClassAt(tx, ty)
			if class == assets.ClassNone {
				tx++
				continue
			}
			run := 1
			for tx+run < level.Cols && level.ClassAt(tx+run, ty) == class {
				run++
			}

			x := float64(tx) * ts
			y := float64(ty) * ts
			w := float64(run) * ts

			switch class {
			case assets.ClassSolid:
				CreateWall(e, resolv.NewObject(x, y, w, ts, tags.ResolvSolid))
			case assets.ClassPlatform:
				// One-way platforms only collide near their top edge.
				CreatePlatform(e, resolv.NewObject(x, y, w, ts/4, tags.ResolvPlatform))
			case assets.ClassDamage:
				// Hazard boxes are slightly inset so brushing a corner
				// doesn't hurt.
				inset := ts / 8
				obj := resolv.NewObject(x+inset, y+inset, w-inset*2, ts-inset*2, tags.ResolvDamage)
				CreateWall(e, obj)
			}
			tx += run
		}
	}
}

func CreateWall(e *ecs.ECS, object *resolv.Object) *donburi.Entry {
	wall := archetypes.Wall.Spawn(e)
	object.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: object})
	addToSpace(e, object)
	return wall
}

func CreatePlatform(e *ecs.ECS, object *resolv.Object) *donburi.Entry {
	platform := archetypes.Platform.Spawn(e)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	addToSpace(e, object)
	return platform
}

// CreateFloatingPlatform builds a platform that rides back and forth along
// a path, driven by a tween over path progress.
func CreateFloatingPlatform(e *ecs.ECS, path assets.PlatformPath, tileSize int) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(e)

	ts := float64(tileSize)
	object := resolv.NewObject(path.FromX, path.FromY, ts*2, ts/4, tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	addToSpace(e, object)

	components.Mover.SetValue(platform, components.MoverData{
		FromX: path.FromX,
		FromY: path.FromY,
		ToX:   path.ToX,
		ToY:   path.ToY,
	})

	half := float32(path.Duration / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, half, ease.InOutQuad),
		gween.New(1, 0, half, ease.InOutQuad),
	)
	components.Tween.Set(platform, tw)

	return platform
}

func spawnLevelObjects(e *ecs.ECS, registry *assets.Registry, level *assets.Level) error {
	for _, spawn := range level.EnemySpawns() {
		if _, err := CreateEnemy(e, registry, spawn.Name, spawn.X, spawn.Y); err != nil {
			return err
		}
	}
	for _, pickup := range level.CollectibleSpawns() {
		if _, err := CreateCollectible(e, registry, pickup.Kind, pickup.X, pickup.Y); err != nil {
			return err
		}
	}
	for _, chest := range level.ChestSpawns() {
		if _, err := CreateChest(e, registry, chest.Kind, chest.X, chest.Y); err != nil {
			return err
		}
	}
	for _, path := range level.PlatformPaths() {
		CreateFloatingPlatform(e, path, level.TileSize)
	}
	return nil
}
