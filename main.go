package main

import (
	"flag"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/fonts"
	"github.com/automoto/darkvania/logging"
	"github.com/automoto/darkvania/scenes"
	"github.com/automoto/darkvania/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	drawHitboxes := flag.Bool("hitboxes", false, "outline collision bodies and attack hitboxes")
	watchAssets := flag.Bool("watch-assets", false, "hot-reload sprite sheets on change")
	tuningPath := flag.String("tuning", "tuning.yaml", "path to the tuning overlay file")
	flag.Parse()

	logging.Init()
	log := logging.L()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.DrawHitboxes = *drawHitboxes
	config.Debug.WatchAssets = *watchAssets

	if err := config.ValidateTransitions(); err != nil {
		log.WithError(err).Fatal("state transition table is invalid")
	}
	if err := config.LoadTuning(*tuningPath); err != nil {
		log.WithError(err).Fatal("tuning overlay is malformed")
	}

	fonts.Load(config.C.AssetDir + "/" + config.C.FontPath)

	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("progress will not be saved")
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("Darkvania")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(systems.LoadSettings().Fullscreen)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
