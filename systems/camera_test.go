package systems

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/components"
	cfg "github.com/automoto/darkvania/config"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{5, 8, 4, 8}, // level narrower than the screen pins to lo
	}
	for _, c := range cases {
		if got := clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestCameraFollowsPlayerOutsideDeadZone(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 400, 2048, 32)
	player := tw.spawnPlayer(t, 600, 400)
	obj := components.Object.Get(player).Object

	cameraEntry := archetypes.Camera.Spawn(tw.ecs)
	components.Camera.SetValue(cameraEntry, components.CameraData{
		Position: dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2},
	})
	camera := components.Camera.Get(cameraEntry)

	// Inside the dead zone the camera holds still.
	startX := camera.Position.X
	obj.X += cfg.Camera.DeadZoneWidth/2 - 1
	obj.Update()
	UpdateCamera(tw.ecs)
	if camera.Position.X != startX {
		t.Fatalf("camera moved %.2f for a shift inside the dead zone", camera.Position.X-startX)
	}

	// A big displacement pulls the camera toward the player over time.
	obj.X += 300
	obj.Update()
	for i := 0; i < 120; i++ {
		UpdateCamera(tw.ecs)
	}
	target := obj.X + obj.W/2
	if diff := math.Abs(camera.Position.X - target); diff > cfg.Camera.DeadZoneWidth {
		t.Fatalf("camera X = %.1f after settling, want near %.1f", camera.Position.X, target)
	}
}

func TestCameraClampsToLevelBounds(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 60, 2048, 32)
	player := tw.spawnPlayer(t, 8, 60)

	levelEntry := archetypes.Level.Spawn(tw.ecs)
	components.Level.SetValue(levelEntry, components.LevelData{
		CurrentLevel: testLevel(40, 20, 32), // 1280 x 640 px
	})

	cameraEntry := archetypes.Camera.Spawn(tw.ecs)
	camera := components.Camera.Get(cameraEntry)

	halfW := float64(cfg.C.Width) / 2
	halfH := float64(cfg.C.Height) / 2

	// Player near the origin pins the camera at the lower bound.
	for i := 0; i < 60; i++ {
		UpdateCamera(tw.ecs)
	}
	if camera.Position.X != halfW {
		t.Fatalf("camera X = %.1f at the level's left edge, want %.1f", camera.Position.X, halfW)
	}
	if camera.Position.Y != halfH {
		t.Fatalf("camera Y = %.1f at the level's top edge, want %.1f", camera.Position.Y, halfH)
	}

	// Player at the far corner pins it at the upper bound.
	obj := components.Object.Get(player).Object
	obj.X, obj.Y = 1270, 630
	obj.Update()
	for i := 0; i < 600; i++ {
		UpdateCamera(tw.ecs)
	}
	if want := 1280 - halfW; camera.Position.X != want {
		t.Fatalf("camera X = %.1f at the level's right edge, want %.1f", camera.Position.X, want)
	}
	if want := 640 - halfH; camera.Position.Y != want {
		t.Fatalf("camera Y = %.1f at the level's bottom edge, want %.1f", camera.Position.Y, want)
	}
}

func TestScreenShakeDecaysAndStops(t *testing.T) {
	tw := newTestWorld(t)
	tw.addSolid(0, 400, 2048, 32)
	tw.spawnPlayer(t, 600, 400)
	cameraEntry := archetypes.Camera.Spawn(tw.ecs)
	shake := components.ScreenShake.Get(cameraEntry)

	if x, y := ShakeOffset(shake); x != 0 || y != 0 {
		t.Fatalf("ShakeOffset = (%.2f, %.2f) with no active shake, want (0, 0)", x, y)
	}

	shake.Intensity = 4
	shake.Duration = cfg.Combat.DamageShakeDuration
	UpdateCamera(tw.ecs)
	x, y := ShakeOffset(shake)
	if x == 0 && y == 0 {
		t.Fatal("ShakeOffset = (0, 0) during an active shake")
	}
	if math.Abs(x) > shake.Intensity || math.Abs(y) > shake.Intensity {
		t.Fatalf("ShakeOffset = (%.2f, %.2f) exceeds intensity %v", x, y, shake.Intensity)
	}

	for i := 0; i < 60; i++ {
		UpdateCamera(tw.ecs)
	}
	if x, y := ShakeOffset(shake); x != 0 || y != 0 {
		t.Fatalf("ShakeOffset = (%.2f, %.2f) after the shake ran out, want (0, 0)", x, y)
	}
}
