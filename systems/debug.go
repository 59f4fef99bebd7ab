package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

var (
	debugBodyColor   = color.RGBA{80, 220, 80, 255}
	debugHitboxColor = color.RGBA{255, 80, 80, 255}
)

// DrawDebug outlines collision bodies and live attack hitboxes. Enabled
// with the -hitboxes flag.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		clr := debugBodyColor
		if e.HasComponent(components.Hitbox) {
			clr = debugHitboxColor
		}
		vector.StrokeRect(screen,
			float32(obj.X+camX), float32(obj.Y+camY),
			float32(obj.W), float32(obj.H), 1, clr, false)
	})
}
