package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/fonts"
)

// SceneChanger allows systems to trigger scene transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the main menu system. Selecting Start hands the
// scene changer a fresh world scene.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		inputEntry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(inputEntry)

		numOptions := len(cfg.Menu.MenuOptions)
		if numOptions == 0 {
			return
		}

		if input.JustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			switch cfg.Menu.MenuOptions[menu.SelectedIndex] {
			case "Start":
				sceneChanger.ChangeScene(createWorldScene())
			case "Fullscreen":
				full := !ebiten.IsFullscreen()
				ebiten.SetFullscreen(full)
				SaveSettings(SavedSettings{Fullscreen: full})
			case "Quit":
				os.Exit(0)
			}
		}
		if input.JustPressed(cfg.ActionMenuBack) {
			os.Exit(0)
		}
	}
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	entity := e.World.Create(components.Menu)
	return components.Menu.Get(e.World.Entry(entity))
}

// DrawMenu renders the title screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor, false)

	title := "DARKVANIA"
	titleX := (width - len(title)*16) / 2
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight
		clr := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			clr = cfg.Menu.TextColorSelected
		}
		optionX := (width - len(option)*7) / 2
		text.Draw(screen, option, fonts.Text.Get(), optionX, int(y), clr)
	}
}
