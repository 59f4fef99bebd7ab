package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
	"github.com/automoto/darkvania/systems"
	"github.com/automoto/darkvania/systems/factory"
)

const maxDeaths = 3

// WorldScene runs the actual game: one loaded level with the player,
// enemies, pickups and moving platforms.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	registry     *assets.Registry
	once         sync.Once

	deaths   int
	sawDeath bool
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	ws.trackDeaths()
	if ws.deaths >= maxDeaths {
		collected := 0
		if playerEntry, ok := components.Player.First(ws.ecs.World); ok {
			collected = components.Player.Get(playerEntry).Collected
		}
		systems.SaveCurrentProgress(ws.ecs, ws.deaths)
		ws.close()
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, collected))
		return
	}

	if inputEntry, ok := components.Input.First(ws.ecs.World); ok {
		if components.Input.Get(inputEntry).JustPressed(cfg.ActionMenuBack) {
			systems.SaveCurrentProgress(ws.ecs, ws.deaths)
			ws.close()
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		}
	}
}

// trackDeaths counts each player death once, on the tick it happens.
func (ws *WorldScene) trackDeaths() {
	playerEntry, ok := components.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	dead := playerEntry.HasComponent(components.Death)
	if dead && !ws.sawDeath {
		ws.deaths++
	}
	ws.sawDeath = dead
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) close() {
	if ws.registry != nil {
		ws.registry.Close()
	}
}

func (ws *WorldScene) configure() {
	ws.registry = assets.NewRegistry(cfg.C.AssetDir, cfg.C.Scale)
	if cfg.Debug.WatchAssets {
		if err := ws.registry.Watch(); err != nil {
			logging.L().WithError(err).Warn("asset watch unavailable")
		}
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.NewUpdateAssetReload(ws.registry))
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateChests)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateCombatHitboxes)
	e.AddSystem(systems.UpdateDamage)
	e.AddSystem(systems.UpdateDeaths)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = e

	_, level, err := factory.CreateLevel(e, ws.registry, cfg.C.MapPath)
	if err != nil {
		logging.L().WithError(err).Fatal("could not load level")
	}

	spawnX, spawnY, ok := level.FindSpawn("player")
	if !ok {
		spawnX = float64(level.TileSize * 2)
		spawnY = float64(level.TileSize * 2)
		logging.L().Warn("map has no player spawn, using fallback position")
	}
	if _, err := factory.CreatePlayer(e, ws.registry, spawnX, spawnY); err != nil {
		logging.L().WithError(err).Fatal("player animations unusable")
	}
	factory.CreateCamera(e, spawnX, spawnY)
}
