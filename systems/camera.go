package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

// UpdateCamera follows the player with a dead zone, smoothing and a facing
// look-ahead, clamped to the level bounds.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	camera := components.Camera.Get(cameraEntry)
	physics := components.Physics.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	targetX := obj.X + obj.W/2
	targetY := obj.Y + obj.H/2

	// Look ahead of the travel direction once the player is actually moving.
	desiredLookAhead := 0.0
	if math.Abs(physics.SpeedX) > cfg.Camera.LookAheadSpeedThreshold {
		desiredLookAhead = player.Direction.X * cfg.Camera.LookAheadDistanceX
	}
	camera.LookAheadX += (desiredLookAhead - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
	targetX += camera.LookAheadX

	// The camera only starts moving once the target leaves the dead zone.
	if dx := targetX - camera.Position.X; math.Abs(dx) > cfg.Camera.DeadZoneWidth/2 {
		camera.Position.X += dx * cfg.Camera.FollowSmoothing
	}
	if dy := targetY - camera.Position.Y; math.Abs(dy) > cfg.Camera.DeadZoneHeight/2 {
		camera.Position.Y += dy * cfg.Camera.FollowSmoothing
	}

	clampCamera(ecs, camera)
	updateScreenShake(cameraEntry)
}

func clampCamera(ecs *ecs.ECS, camera *components.CameraData) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2
	camera.Position.X = clamp(camera.Position.X, halfW, float64(level.PixelWidth())-halfW)
	camera.Position.Y = clamp(camera.Position.Y, halfH, float64(level.PixelHeight())-halfH)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func updateScreenShake(cameraEntry *donburi.Entry) {
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration <= 0 {
		return
	}
	shake.Elapsed += cfg.TimeStep
	shake.Duration -= cfg.TimeStep
	if shake.Duration <= 0 {
		shake.Intensity = 0
		shake.Elapsed = 0
	}
}

// ShakeOffset is the current camera displacement from an active screen
// shake, decaying as the shake runs out.
func ShakeOffset(camera *components.ScreenShakeData) (float64, float64) {
	if camera.Duration <= 0 || camera.Intensity <= 0 {
		return 0, 0
	}
	strength := camera.Intensity * math.Min(1, camera.Duration/cfg.Combat.DamageShakeDuration)
	return math.Sin(camera.Elapsed*55) * strength, math.Cos(camera.Elapsed*47) * strength
}
