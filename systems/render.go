package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

var drawOp = &ebiten.DrawImageOptions{}

// Viewport culling skips draw calls for entities that are off-screen. A
// small padding prevents sprites popping in and out at the edges.
const cullPadding = 64.0

// DrawAnimated renders every animated entity. Sprites are anchored by their
// frame pivot at the bottom-center of the collision box; left-facing frames
// are pre-flipped at load time so no per-draw mirroring is needed.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	shakeX, shakeY := ShakeOffset(components.ScreenShake.Get(cameraEntry))
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	camX := float64(width)/2 - camera.Position.X + shakeX
	camY := float64(height)/2 - camera.Position.Y + shakeY

	minX := camera.Position.X - float64(width)/2 - cullPadding
	maxX := camera.Position.X + float64(width)/2 + cullPadding
	minY := camera.Position.Y - float64(height)/2 - cullPadding
	maxY := camera.Position.Y + float64(height)/2 + cullPadding

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		anim := components.Animation.Get(e)
		frame, ok := anim.Frame()
		if !ok || frame.Image == nil {
			// Missing art still renders as a solid box so the entity is
			// visible during development.
			vector.DrawFilledRect(screen,
				float32(o.X+camX), float32(o.Y+camY),
				float32(o.W), float32(o.H), cfg.Placeholder, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Pivot lands on the bottom-center of the collision box.
		drawOp.GeoM.Translate(
			o.X+o.W/2-float64(frame.Pivot.X),
			o.Y+o.H-float64(frame.Pivot.Y),
		)
		drawOp.GeoM.Translate(camX, camY)

		applyColorEffects(e, drawOp)

		screen.DrawImage(frame.Image, drawOp)
	})
}

func applyColorEffects(e *donburi.Entry, op *ebiten.DrawImageOptions) {
	// Flicker while invulnerable.
	if e.HasComponent(components.Effects) {
		effects := components.Effects.Get(e)
		if remaining := effects.Remaining(components.EffectInvulnerable); remaining > 0 {
			if int(remaining/0.066)%2 == 0 {
				op.ColorScale.Scale(1, 0.5, 0.5, 0.8)
			}
		}
	}

	// Flash overrides other color effects. Dying entities skip it so the
	// death animation reads cleanly.
	if e.HasComponent(components.Flash) && !e.HasComponent(components.Death) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			op.ColorScale.Reset()
			op.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
		}
	}
}
