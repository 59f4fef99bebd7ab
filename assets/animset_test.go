package assets

import (
	"errors"
	"testing"

	"github.com/automoto/darkvania/assets/aseprite"
	"github.com/automoto/darkvania/config"
)

// sheetWithTags builds a logic-only sheet containing the named tags, one
// frame each.
func sheetWithTags(t *testing.T, tags ...string) *aseprite.Sheet {
	t.Helper()
	d := &aseprite.Descriptor{}
	for i, name := range tags {
		d.Frames = append(d.Frames, aseprite.FrameInfo{
			Name:     name,
			Duration: 0.1,
		})
		d.Tags = append(d.Tags, aseprite.Tag{Name: name, From: i, To: i, Direction: aseprite.Forward})
	}
	return aseprite.FromDescriptor(d, nil, 1)
}

func TestBindAnimationsDirectResolution(t *testing.T) {
	sheet := sheetWithTags(t, "Idle", "Walk", "Slash 1")
	binding := config.AnimationBinding{
		Entity: "test",
		States: map[config.StateID]string{
			config.Idle:    "Idle",
			config.Walk:    "Walk",
			config.Attack1: "Slash 1",
		},
		Baseline: config.Idle,
	}
	set, err := BindAnimations(sheet, binding)
	if err != nil {
		t.Fatalf("BindAnimations: %v", err)
	}
	for _, s := range []config.StateID{config.Idle, config.Walk, config.Attack1} {
		if !set.Has(s) {
			t.Errorf("state %s not bound", s)
		}
	}
	if set.Animation(config.Attack1).Name != "Slash 1" {
		t.Errorf("attack1 bound to %q", set.Animation(config.Attack1).Name)
	}
}

func TestBindAnimationsFallbackOrder(t *testing.T) {
	// No "Roll" tag: the chain is roll -> walk -> idle, and walk exists, so
	// roll must bind to Walk, not Idle.
	sheet := sheetWithTags(t, "Idle", "Walk")
	binding := config.AnimationBinding{
		Entity: "test",
		States: map[config.StateID]string{
			config.Idle: "Idle",
			config.Walk: "Walk",
			config.Roll: "Roll",
		},
		Fallbacks: map[config.StateID][]config.StateID{
			config.Roll: {config.Walk, config.Idle},
		},
		Baseline: config.Idle,
	}
	set, err := BindAnimations(sheet, binding)
	if err != nil {
		t.Fatalf("BindAnimations: %v", err)
	}
	if got := set.Animation(config.Roll).Name; got != "Walk" {
		t.Errorf("roll bound to %q, want Walk", got)
	}
}

func TestBindAnimationsBaselineCatchAll(t *testing.T) {
	// Exhausted chain lands on the baseline.
	sheet := sheetWithTags(t, "Idle")
	binding := config.AnimationBinding{
		Entity: "test",
		States: map[config.StateID]string{
			config.Idle:  "Idle",
			config.Death: "death",
		},
		Fallbacks: map[config.StateID][]config.StateID{
			config.Death: {config.Hit},
		},
		Baseline: config.Idle,
	}
	set, err := BindAnimations(sheet, binding)
	if err != nil {
		t.Fatalf("BindAnimations: %v", err)
	}
	if got := set.Animation(config.Death).Name; got != "Idle" {
		t.Errorf("death bound to %q, want Idle", got)
	}
}

func TestBindAnimationsBaselineMissing(t *testing.T) {
	sheet := sheetWithTags(t, "Walk")
	binding := config.AnimationBinding{
		Entity:   "test",
		States:   map[config.StateID]string{config.Idle: "Idle", config.Walk: "Walk"},
		Baseline: config.Idle,
	}
	_, err := BindAnimations(sheet, binding)
	if !errors.Is(err, ErrBaselineMissing) {
		t.Fatalf("got %v, want ErrBaselineMissing", err)
	}
}

func TestPlayerBindingAgainstFullSheet(t *testing.T) {
	// A sheet carrying every tag the player binding names resolves every
	// state directly.
	var tagsList []string
	for _, tag := range config.PlayerBinding.States {
		tagsList = append(tagsList, tag)
	}
	sheet := sheetWithTags(t, tagsList...)
	set, err := BindAnimations(sheet, config.PlayerBinding)
	if err != nil {
		t.Fatalf("BindAnimations: %v", err)
	}
	for state, tag := range config.PlayerBinding.States {
		if got := set.Animation(state).Name; got != tag {
			t.Errorf("state %s bound to %q, want %q", state, got, tag)
		}
	}
}

func TestAnimationSetQueries(t *testing.T) {
	d := &aseprite.Descriptor{
		Frames: []aseprite.FrameInfo{
			{Name: "0", Duration: 0.1},
			{Name: "1", Duration: 0.2},
			{Name: "2", Duration: 0.1},
		},
		Tags: []aseprite.Tag{{Name: "Idle", From: 0, To: 2, Direction: aseprite.Forward}},
	}
	sheet := aseprite.FromDescriptor(d, nil, 1)
	set, err := BindAnimations(sheet, config.AnimationBinding{
		Entity:   "test",
		States:   map[config.StateID]string{config.Idle: "Idle"},
		Baseline: config.Idle,
	})
	if err != nil {
		t.Fatalf("BindAnimations: %v", err)
	}
	if got := set.FrameCount(config.Idle); got != 3 {
		t.Errorf("FrameCount = %d, want 3", got)
	}
	if got := set.FrameDuration(config.Idle, 1); got != 0.2 {
		t.Errorf("FrameDuration(1) = %v, want 0.2", got)
	}
	if got := set.FrameDuration(config.Idle, 9); got != 0 {
		t.Errorf("out-of-range duration = %v, want 0", got)
	}
	if set.Has(config.Walk) {
		t.Error("unbound state reported as present")
	}
	if got := set.FrameCount(config.Walk); got != 0 {
		t.Errorf("unbound FrameCount = %d, want 0", got)
	}
}

func TestNewCursorModeFollowsState(t *testing.T) {
	sheet := sheetWithTags(t, "Idle", "Slash 1")
	set, err := BindAnimations(sheet, config.AnimationBinding{
		Entity: "test",
		States: map[config.StateID]string{
			config.Idle:    "Idle",
			config.Attack1: "Slash 1",
		},
		Baseline: config.Idle,
	})
	if err != nil {
		t.Fatalf("BindAnimations: %v", err)
	}
	idle := set.NewCursor(config.Idle)
	idle.Advance(1)
	if idle.Finished() {
		t.Error("looping idle cursor finished")
	}
	atk := set.NewCursor(config.Attack1)
	atk.Advance(1)
	if !atk.Finished() {
		t.Error("one-shot attack cursor never finished")
	}
}
