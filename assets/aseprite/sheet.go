package aseprite

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame is one displayable cell of an animation: the image (already scaled
// and, for left-facing frames, mirrored), its pivot in scaled pixels, and
// its duration in seconds.
type Frame struct {
	Image    *ebiten.Image
	Source   image.Rectangle
	Pivot    image.Point
	Duration float64
}

// Animation is a single tagged sequence with pre-rendered right and left
// facing frames. Mirroring at load time keeps the draw path to a plain blit.
type Animation struct {
	Name      string
	Direction Direction
	right     []Frame
	left      []Frame
}

// Len is the number of frames in the sequence.
func (a *Animation) Len() int { return len(a.right) }

// Frame returns frame i for the given facing.
func (a *Animation) Frame(i int, facingRight bool) Frame {
	if facingRight {
		return a.right[i]
	}
	return a.left[i]
}

// Durations returns the per-frame durations, shared by both facings.
func (a *Animation) Durations() []float64 {
	out := make([]float64, len(a.right))
	for i, f := range a.right {
		out[i] = f.Duration
	}
	return out
}

// NewCursor starts a playback cursor over this animation. One-shot states
// pass ModeOnce regardless of the tag's direction.
func (a *Animation) NewCursor(mode Mode) Cursor {
	return NewCursor(a.Durations(), a.Direction, mode)
}

// Sheet is a fully sliced sprite sheet: every tag of the descriptor as a
// ready-to-play Animation, keyed by tag name.
type Sheet struct {
	Animations map[string]*Animation
}

// Animation returns the named tag's animation.
func (s *Sheet) Animation(name string) (*Animation, bool) {
	a, ok := s.Animations[name]
	return a, ok
}

// Load reads a sheet descriptor and its image from fsys and slices every
// tag. scale is the integer pixel scale applied while slicing.
func Load(fsys fs.FS, jsonPath string, scale int) (*Sheet, error) {
	data, err := fs.ReadFile(fsys, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, jsonPath)
	}
	d, err := ParseDescriptor(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jsonPath, err)
	}

	imgPath := imagePathFor(d, jsonPath)
	imgData, err := fsys.Open(imgPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingFile, imgPath)
	}
	defer imgData.Close()
	src, _, err := image.Decode(imgData)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDescriptor, imgPath, err)
	}

	return FromDescriptor(d, ebiten.NewImageFromImage(src), scale), nil
}

// imagePathFor resolves the sheet image next to the descriptor, preferring
// the path recorded in the export's meta.image.
func imagePathFor(d *Descriptor, jsonPath string) string {
	dir := path.Dir(jsonPath)
	if d.ImagePath != "" {
		return path.Join(dir, path.Base(d.ImagePath))
	}
	return strings.TrimSuffix(jsonPath, path.Ext(jsonPath)) + ".png"
}

// FromDescriptor slices a sheet image per the descriptor. A nil image yields
// animations with nil frame images but correct pivots and timing, which is
// what timing and state tests work against.
func FromDescriptor(d *Descriptor, img *ebiten.Image, scale int) *Sheet {
	if scale < 1 {
		scale = 1
	}
	sheet := &Sheet{Animations: make(map[string]*Animation, len(d.Tags))}
	for _, tag := range d.Tags {
		anim := &Animation{Name: tag.Name, Direction: tag.Direction}
		for i := tag.From; i <= tag.To; i++ {
			info := d.Frames[i]
			w := info.Source.Dx() * scale

			pivot := image.Pt(0, 0)
			if d.HasPivot {
				pivot = image.Pt(d.Pivot.X*scale, d.Pivot.Y*scale)
			}
			leftPivot := image.Pt(w-pivot.X, pivot.Y)

			var rightImg, leftImg *ebiten.Image
			if img != nil {
				cell := img.SubImage(info.Source).(*ebiten.Image)
				rightImg = renderCell(cell, scale, false)
				leftImg = renderCell(cell, scale, true)
			}

			anim.right = append(anim.right, Frame{
				Image: rightImg, Source: info.Source, Pivot: pivot, Duration: info.Duration,
			})
			anim.left = append(anim.left, Frame{
				Image: leftImg, Source: info.Source, Pivot: leftPivot, Duration: info.Duration,
			})
		}
		sheet.Animations[tag.Name] = anim
	}
	return sheet
}

func renderCell(cell *ebiten.Image, scale int, flip bool) *ebiten.Image {
	bounds := cell.Bounds()
	w, h := bounds.Dx()*scale, bounds.Dy()*scale
	out := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-float64(scale), float64(scale))
		op.GeoM.Translate(float64(w), 0)
	} else {
		op.GeoM.Scale(float64(scale), float64(scale))
	}
	out.DrawImage(cell, op)
	return out
}

// Placeholder builds a one-frame looping animation of a solid color,
// pivoted at bottom center. It stands in for any sheet or tag that failed
// to load so the game keeps running with a visible marker.
func Placeholder(w, h int, clr color.Color) *Animation {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	f := Frame{
		Image:    img,
		Source:   image.Rect(0, 0, w, h),
		Pivot:    image.Pt(w/2, h),
		Duration: defaultFrameDuration,
	}
	return &Animation{Name: "placeholder", Direction: Forward, right: []Frame{f}, left: []Frame{f}}
}

// PlaceholderFrames is the logic-only variant of Placeholder for code paths
// that must not touch the GPU.
func PlaceholderFrames(w, h int) *Animation {
	f := Frame{
		Source:   image.Rect(0, 0, w, h),
		Pivot:    image.Pt(w/2, h),
		Duration: defaultFrameDuration,
	}
	return &Animation{Name: "placeholder", Direction: Forward, right: []Frame{f}, left: []Frame{f}}
}
