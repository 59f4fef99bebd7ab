package components

import "github.com/yohamta/donburi"

// MoverData describes the endpoints of a floating platform's path. The
// attached tween drives a 0..1 progress value between them.
type MoverData struct {
	FromX, FromY float64
	ToX, ToY     float64
}

// At returns the world position for a path progress in [0, 1].
func (m *MoverData) At(progress float64) (float64, float64) {
	return m.FromX + (m.ToX-m.FromX)*progress, m.FromY + (m.ToY-m.FromY)*progress
}

var Mover = donburi.NewComponentType[MoverData]()
