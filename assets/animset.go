// Package assets owns loaded game content: sliced sprite sheets, bound
// per-entity animation sets, and level data parsed from the editor's map
// JSON.
package assets

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/automoto/darkvania/assets/aseprite"
	"github.com/automoto/darkvania/config"
	"github.com/automoto/darkvania/logging"
)

// ErrBaselineMissing means a sheet cannot supply the binding's baseline
// animation even through fallbacks. An entity without its baseline cannot
// be drawn at all, so construction fails.
var ErrBaselineMissing = fmt.Errorf("assets: baseline animation missing")

// AnimationSet is an entity's resolved state-to-animation table. Every bound
// state maps to a playable animation; states the sheet lacked were resolved
// through the binding's fallback chains at construction time.
type AnimationSet struct {
	Entity string
	anims  map[config.StateID]*aseprite.Animation
}

// Has reports whether the state resolved to an animation.
func (s *AnimationSet) Has(state config.StateID) bool {
	_, ok := s.anims[state]
	return ok
}

// Animation returns the state's animation, or nil when unbound.
func (s *AnimationSet) Animation(state config.StateID) *aseprite.Animation {
	return s.anims[state]
}

// FrameCount returns the number of frames bound to the state, 0 if unbound.
func (s *AnimationSet) FrameCount(state config.StateID) int {
	a, ok := s.anims[state]
	if !ok {
		return 0
	}
	return a.Len()
}

// FrameDuration returns frame i's duration in seconds, 0 if out of range.
func (s *AnimationSet) FrameDuration(state config.StateID, i int) float64 {
	a, ok := s.anims[state]
	if !ok || i < 0 || i >= a.Len() {
		return 0
	}
	return a.Frame(i, true).Duration
}

// Frame returns frame i of the state for the given facing.
func (s *AnimationSet) Frame(state config.StateID, i int, facingRight bool) (aseprite.Frame, bool) {
	a, ok := s.anims[state]
	if !ok || i < 0 || i >= a.Len() {
		return aseprite.Frame{}, false
	}
	return a.Frame(i, facingRight), true
}

// Pivot returns frame i's pivot for the given facing.
func (s *AnimationSet) Pivot(state config.StateID, i int, facingRight bool) image.Point {
	f, ok := s.Frame(state, i, facingRight)
	if !ok {
		return image.Point{}
	}
	return f.Pivot
}

// NewCursor starts playback of the state's animation. One-shot states play
// in ModeOnce so their completion can gate state exits.
func (s *AnimationSet) NewCursor(state config.StateID) aseprite.Cursor {
	a, ok := s.anims[state]
	if !ok {
		return aseprite.Cursor{}
	}
	mode := aseprite.ModeLoop
	if config.OneShotStates[state] {
		mode = aseprite.ModeOnce
	}
	return a.NewCursor(mode)
}

// BindAnimations resolves a binding against a sliced sheet. Missing states
// walk their fallback chain and finally the baseline; each substitution is
// logged. Only an unresolvable baseline is an error.
func BindAnimations(sheet *aseprite.Sheet, binding config.AnimationBinding) (*AnimationSet, error) {
	baseline, ok := lookupTag(sheet, binding, binding.Baseline)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %q tag for state %s",
			ErrBaselineMissing, binding.Entity, binding.States[binding.Baseline], binding.Baseline)
	}

	set := &AnimationSet{
		Entity: binding.Entity,
		anims:  make(map[config.StateID]*aseprite.Animation, len(binding.States)),
	}
	for state := range binding.States {
		if a, ok := lookupTag(sheet, binding, state); ok {
			set.anims[state] = a
			continue
		}
		set.anims[state] = resolveFallback(sheet, binding, state, baseline)
	}
	return set, nil
}

// lookupTag finds the sheet animation directly bound to a state.
func lookupTag(sheet *aseprite.Sheet, binding config.AnimationBinding, state config.StateID) (*aseprite.Animation, bool) {
	tag, ok := binding.States[state]
	if !ok {
		return nil, false
	}
	return sheet.Animation(tag)
}

func resolveFallback(sheet *aseprite.Sheet, binding config.AnimationBinding, state config.StateID, baseline *aseprite.Animation) *aseprite.Animation {
	for _, alt := range binding.Fallbacks[state] {
		if a, ok := lookupTag(sheet, binding, alt); ok {
			logging.L().WithFields(logrus.Fields{
				"entity": binding.Entity,
				"state":  state.String(),
				"using":  alt.String(),
			}).Warn("animation missing, substituting fallback")
			return a
		}
	}
	logging.L().WithFields(logrus.Fields{
		"entity": binding.Entity,
		"state":  state.String(),
	}).Warn("animation missing, substituting baseline")
	return baseline
}

// PlaceholderSet builds an animation set whose every bound state is the
// solid-color placeholder. Used when a whole sheet failed to load.
func PlaceholderSet(binding config.AnimationBinding, w, h int) *AnimationSet {
	ph := aseprite.Placeholder(w, h, config.Placeholder)
	set := &AnimationSet{
		Entity: binding.Entity,
		anims:  make(map[config.StateID]*aseprite.Animation, len(binding.States)),
	}
	for state := range binding.States {
		set.anims[state] = ph
	}
	return set
}
