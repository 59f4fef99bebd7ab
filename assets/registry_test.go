package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/darkvania/assets/aseprite"
)

const registryDescriptor = `{
 "frames": {
  "hero 0.png": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "duration": 100}
 },
 "meta": {
  "image": "hero.png",
  "frameTags": [{"name": "Idle", "from": 0, "to": 0, "direction": "forward"}]
 }
}`

func TestSheetMissingDescriptorStaysMissing(t *testing.T) {
	r := NewRegistryFS(fstest.MapFS{}, 1)

	// The failure must repeat identically; a bad lookup may not poison the
	// cache into returning a stale or nil sheet later.
	for i := 0; i < 3; i++ {
		s, err := r.Sheet("hero/hero.json")
		if !errors.Is(err, aseprite.ErrMissingFile) {
			t.Fatalf("attempt %d: err = %v, want ErrMissingFile", i, err)
		}
		if s != nil {
			t.Fatalf("attempt %d: got sheet %v on error", i, s)
		}
	}
}

func TestSheetMissingImage(t *testing.T) {
	fsys := fstest.MapFS{
		"hero/hero.json": &fstest.MapFile{Data: []byte(registryDescriptor)},
	}
	r := NewRegistryFS(fsys, 1)

	_, err := r.Sheet("hero/hero.json")
	if !errors.Is(err, aseprite.ErrMissingFile) {
		t.Fatalf("err = %v, want ErrMissingFile", err)
	}
}

func TestSheetMalformedDescriptor(t *testing.T) {
	fsys := fstest.MapFS{
		"hero/hero.json": &fstest.MapFile{Data: []byte(`{"frames": []`)},
	}
	r := NewRegistryFS(fsys, 1)

	_, err := r.Sheet("hero/hero.json")
	if !errors.Is(err, aseprite.ErrMalformedDescriptor) {
		t.Fatalf("err = %v, want ErrMalformedDescriptor", err)
	}
}

func TestReloadUnknownPathIsNoop(t *testing.T) {
	r := NewRegistryFS(fstest.MapFS{}, 1)
	if err := r.Reload("never/loaded.json"); err != nil {
		t.Fatalf("reload of unknown path: %v", err)
	}
}

func TestWatchRequiresDiskRoot(t *testing.T) {
	r := NewRegistryFS(fstest.MapFS{}, 1)
	if err := r.Watch(); err == nil {
		t.Fatal("watch on a rootless registry must fail")
	}
}
