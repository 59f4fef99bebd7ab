package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

var tileOp = &ebiten.DrawImageOptions{}

// DrawLevel renders the visible slice of every tile layer, back to front.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	shakeX, shakeY := ShakeOffset(components.ScreenShake.Get(cameraEntry))

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - camera.Position.X + shakeX
	camY := float64(height)/2 - camera.Position.Y + shakeY

	ts := level.TileSize

	// Visible tile range, one tile of slack on each side.
	minTX := int((camera.Position.X-float64(width)/2)/float64(ts)) - 1
	maxTX := int((camera.Position.X+float64(width)/2)/float64(ts)) + 1
	minTY := int((camera.Position.Y-float64(height)/2)/float64(ts)) - 1
	maxTY := int((camera.Position.Y+float64(height)/2)/float64(ts)) + 1

	for li := range level.Layers {
		for ty := minTY; ty <= maxTY; ty++ {
			for tx := minTX; tx <= maxTX; tx++ {
				id := level.TileAt(li, tx, ty)
				if id < 0 {
					continue
				}
				x := float64(tx*ts) + camX
				y := float64(ty*ts) + camY

				if id >= len(level.Tiles) || level.Tiles[id] == nil {
					vector.DrawFilledRect(screen,
						float32(x), float32(y), float32(ts), float32(ts),
						cfg.Placeholder, false)
					continue
				}

				tileOp.GeoM.Reset()
				tileOp.GeoM.Translate(x, y)
				screen.DrawImage(level.Tiles[id], tileOp)
			}
		}
	}
}
