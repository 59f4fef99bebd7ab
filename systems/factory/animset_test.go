package factory

import (
	"errors"
	"image"
	"testing"

	"github.com/automoto/darkvania/assets"
	"github.com/automoto/darkvania/assets/aseprite"
	cfg "github.com/automoto/darkvania/config"
)

func sheetWithTags(tagNames ...string) *aseprite.Sheet {
	d := &aseprite.Descriptor{}
	for i := 0; i < 4; i++ {
		d.Frames = append(d.Frames, aseprite.FrameInfo{
			Source:   image.Rect(i*16, 0, i*16+16, 16),
			Duration: 0.1,
		})
	}
	for _, name := range tagNames {
		d.Tags = append(d.Tags, aseprite.Tag{Name: name, From: 0, To: 3, Direction: aseprite.Forward})
	}
	return aseprite.FromDescriptor(d, nil, 1)
}

func TestBindSheetMissingBaselineFails(t *testing.T) {
	sheet := sheetWithTags("run", "hit", "death")

	set, err := bindSheet(sheet, "enemies/assassin/Assassin.json", cfg.AssassinBinding, 16, 16)
	if !errors.Is(err, assets.ErrBaselineMissing) {
		t.Fatalf("err = %v, want ErrBaselineMissing", err)
	}
	if set != nil {
		t.Fatalf("got set %v on baseline error", set)
	}
}

func TestBindSheetResolvesFallbacks(t *testing.T) {
	// No attack or death tags; both must resolve down the fallback chains
	// without an error.
	sheet := sheetWithTags("idle", "run")

	set, err := bindSheet(sheet, "enemies/assassin/Assassin.json", cfg.AssassinBinding, 16, 16)
	if err != nil {
		t.Fatalf("bindSheet: %v", err)
	}
	for _, state := range []cfg.StateID{cfg.Idle, cfg.Patrol, cfg.EnemyAttack, cfg.Death} {
		if !set.Has(state) {
			t.Errorf("state %s unbound", state)
		}
	}
}
