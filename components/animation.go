package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/assets/aseprite"
	"github.com/automoto/darkvania/config"
)

type AnimationData struct {
	Set          *assets.AnimationSet
	Cursor       aseprite.Cursor
	CurrentState config.StateID
	FacingRight  bool
	SheetPath    string // descriptor path, for hot-reload rebinding
}

// SetState switches the playing animation, restarting the cursor. One-shot
// states play once and freeze so their completion can drive state exits.
// Re-entering the current state is a no-op.
func (a *AnimationData) SetState(state config.StateID) {
	if a.CurrentState == state {
		return
	}
	a.CurrentState = state
	if a.Set != nil {
		a.Cursor = a.Set.NewCursor(state)
	}
}

// Restart replays the current state's animation from its first frame. Used
// when a state legally re-enters itself, e.g. chaining attack1 into attack1.
func (a *AnimationData) Restart() {
	if a.Set != nil {
		a.Cursor = a.Set.NewCursor(a.CurrentState)
	}
}

// Frame returns the current frame image data for the facing direction.
func (a *AnimationData) Frame() (aseprite.Frame, bool) {
	if a.Set == nil {
		return aseprite.Frame{}, false
	}
	return a.Set.Frame(a.CurrentState, a.Cursor.Frame(), a.FacingRight)
}

// Finished reports whether a one-shot animation has completed.
func (a *AnimationData) Finished() bool {
	return a.Cursor.Finished()
}

var Animation = donburi.NewComponentType[AnimationData]()
