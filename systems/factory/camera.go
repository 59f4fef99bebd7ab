package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/darkvania/archetypes"
	"github.com/automoto/darkvania/components"
)

// CreateCamera spawns the camera centered on a world position.
func CreateCamera(e *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}
