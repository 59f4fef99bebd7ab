// Package aseprite parses Aseprite JSON sheet exports (hash form) and slices
// the sprite sheet image into per-frame, per-facing images with pivots and
// frame timing.
package aseprite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
)

// Sentinel errors for the two content failure classes. Callers fall back to
// a placeholder animation on either; neither is a programming error.
var (
	ErrMissingFile         = fmt.Errorf("aseprite: missing file")
	ErrMalformedDescriptor = fmt.Errorf("aseprite: malformed descriptor")
)

// Direction is a tag's playback direction.
type Direction string

const (
	Forward  Direction = "forward"
	Reverse  Direction = "reverse"
	PingPong Direction = "pingpong"
)

// FrameInfo describes one frame of the sheet: its source rectangle and its
// duration converted to seconds.
type FrameInfo struct {
	Name     string
	Source   image.Rectangle
	Duration float64
}

// Tag is a named animation: an inclusive range of 0-based indices into the
// global frame list.
type Tag struct {
	Name      string
	From, To  int
	Direction Direction
}

// Descriptor is the parsed metadata of a sheet export. Frames preserves the
// document order of the JSON "frames" object, which defines the global
// 0-based frame indexing the tags refer to.
type Descriptor struct {
	Frames    []FrameInfo
	Tags      []Tag
	Pivot     image.Point
	HasPivot  bool
	ImagePath string
}

const defaultFrameDuration = 0.1 // 100ms, matching Aseprite's default

type rawRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type rawFrame struct {
	Frame    rawRect `json:"frame"`
	Duration int     `json:"duration"`
}

// orderedFrames decodes the "frames" object preserving key order. A plain
// map would scramble the 0-based indices the frameTags reference.
type orderedFrames []FrameInfo

func (o *orderedFrames) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("frames must be a JSON object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("frame key is not a string")
		}
		var rf rawFrame
		if err := dec.Decode(&rf); err != nil {
			return fmt.Errorf("frame %q: %w", name, err)
		}
		dur := float64(rf.Duration) / 1000.0
		if rf.Duration <= 0 {
			dur = defaultFrameDuration
		}
		*o = append(*o, FrameInfo{
			Name:     name,
			Source:   image.Rect(rf.Frame.X, rf.Frame.Y, rf.Frame.X+rf.Frame.W, rf.Frame.Y+rf.Frame.H),
			Duration: dur,
		})
	}
	_, err = dec.Token() // closing '}'
	return err
}

type rawTag struct {
	Name      string `json:"name"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
}

type rawSliceKey struct {
	Frame  int     `json:"frame"`
	Bounds rawRect `json:"bounds"`
	Pivot  struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pivot"`
}

type rawSlice struct {
	Name string        `json:"name"`
	Keys []rawSliceKey `json:"keys"`
}

type rawDescriptor struct {
	Frames orderedFrames `json:"frames"`
	Meta   struct {
		Image     string     `json:"image"`
		FrameTags []rawTag   `json:"frameTags"`
		Slices    []rawSlice `json:"slices"`
	} `json:"meta"`
}

// ParseDescriptor reads and validates a sheet descriptor. Tag ranges are
// checked against the frame count so a bad export fails at load time, not
// during playback.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var raw rawDescriptor
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}
	if len(raw.Frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrMalformedDescriptor)
	}

	d := &Descriptor{
		Frames:    raw.Frames,
		ImagePath: raw.Meta.Image,
	}

	for _, t := range raw.Meta.FrameTags {
		if t.From < 0 || t.To < t.From || t.To >= len(raw.Frames) {
			return nil, fmt.Errorf("%w: tag %q range [%d,%d] out of bounds for %d frames",
				ErrMalformedDescriptor, t.Name, t.From, t.To, len(raw.Frames))
		}
		dir := Direction(t.Direction)
		switch dir {
		case Forward, Reverse, PingPong:
		case "":
			dir = Forward
		default:
			// Unknown directions (e.g. pingpong_reverse) degrade to forward.
			dir = Forward
		}
		d.Tags = append(d.Tags, Tag{Name: t.Name, From: t.From, To: t.To, Direction: dir})
	}

	for _, s := range raw.Meta.Slices {
		if s.Name != "Pivot" || len(s.Keys) == 0 {
			continue
		}
		key := s.Keys[0]
		d.Pivot = image.Pt(key.Bounds.X+key.Pivot.X, key.Bounds.Y+key.Pivot.Y)
		d.HasPivot = true
		break
	}

	return d, nil
}

// TagNamed returns the tag with the given name.
func (d *Descriptor) TagNamed(name string) (Tag, bool) {
	for _, t := range d.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}
