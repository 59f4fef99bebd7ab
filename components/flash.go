package components

import "github.com/yohamta/donburi"

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration float64 // seconds remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds remaining
	Elapsed   float64 // seconds elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
