package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/systems"
)

// GameOverScene shows the end-of-run summary.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	collected    int
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, collected int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, collected: collected}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if inputEntry, ok := components.Input.First(gs.ecs.World); ok {
		input := components.Input.Get(inputEntry)
		if input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionMenuBack) {
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		}
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddRenderer(cfg.Default, systems.NewDrawGameOver(gs.collected))
}
