package assets

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/automoto/darkvania/logging"
)

// TileClass is a tile's collision behavior, assigned per tile index by the
// map's tile_properties side table.
type TileClass int

const (
	ClassNone TileClass = iota
	ClassSolid
	ClassPlatform
	ClassDamage
)

func classFromString(s string) TileClass {
	switch s {
	case "solid":
		return ClassSolid
	case "platform":
		return ClassPlatform
	case "damage":
		return ClassDamage
	default:
		return ClassNone
	}
}

// Layer is one draw layer: a dense tile-index grid plus the sparse list the
// renderer iterates.
type Layer struct {
	Name  string
	grid  []int // cols*rows, -1 empty
	Tiles []PlacedTile
}

// PlacedTile is one occupied cell of a layer.
type PlacedTile struct {
	X, Y int // grid coordinates
	T    int // tile index into the tileset
}

// Object is a map object placed in the editor: spawn points, enemies,
// collectibles, moving platform paths.
type Object struct {
	Type   string                     `json:"type"`
	Name   string                     `json:"name"`
	X      int                        `json:"x"`
	Y      int                        `json:"y"`
	Custom map[string]json.RawMessage `json:"custom_properties"`
}

// FloatProp reads a numeric custom property, with a default.
func (o Object) FloatProp(key string, def float64) float64 {
	raw, ok := o.Custom[key]
	if !ok {
		return def
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// CollisionTile is one grid cell that participates in collision.
type CollisionTile struct {
	X, Y  int
	Class TileClass
}

// Level is a fully loaded map: sliced tileset art, draw layers, the O(1)
// tile-class table, collision cells and placed objects. All pixel values
// are pre-multiplied by the load scale.
type Level struct {
	TileSize int // scaled pixels per tile
	Cols     int
	Rows     int

	Tiles       []*ebiten.Image // indexed by tile id, may be nil entries
	Layers      []Layer
	Objects     []Object
	classByTile []TileClass
}

type rawTile struct {
	X int `json:"x"`
	Y int `json:"y"`
	T int `json:"t"`
}

type rawLayer struct {
	Name  string    `json:"name"`
	Tiles []rawTile `json:"tiles"`
}

type rawTileProps struct {
	CollisionType string `json:"collision_type"`
}

type rawMap struct {
	TileSize       int                     `json:"tile_size"`
	Margin         int                     `json:"margin"`
	Spacing        int                     `json:"spacing"`
	MapCols        int                     `json:"map_cols"`
	MapRows        int                     `json:"map_rows"`
	Tileset        string                  `json:"tileset"`
	TileProperties map[string]rawTileProps `json:"tile_properties"`
	Layers         []rawLayer              `json:"layers"`
	Objects        []Object                `json:"objects"`
}

// LoadLevel loads a map in the editor's JSON format from fsys. Missing or
// unreadable tileset art is not fatal: the level still carries its collision
// and object data and the renderer substitutes placeholders.
func LoadLevel(fsys fs.FS, mapPath string, scale int) (*Level, error) {
	data, err := fs.ReadFile(fsys, mapPath)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", mapPath, err)
	}
	var raw rawMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("load map %s: %w", mapPath, err)
	}
	return buildLevel(fsys, mapPath, &raw, scale)
}

func buildLevel(fsys fs.FS, mapPath string, raw *rawMap, scale int) (*Level, error) {
	if raw.TileSize <= 0 || raw.MapCols <= 0 || raw.MapRows <= 0 {
		return nil, fmt.Errorf("load map %s: bad dimensions %dx%d tile %d",
			mapPath, raw.MapCols, raw.MapRows, raw.TileSize)
	}
	if scale < 1 {
		scale = 1
	}

	lvl := &Level{
		TileSize: raw.TileSize * scale,
		Cols:     raw.MapCols,
		Rows:     raw.MapRows,
		Objects:  raw.Objects,
	}

	// The class table is indexed by tile id so per-cell queries are a slice
	// load, not a map+strconv round trip.
	maxID := -1
	for id := range raw.TileProperties {
		n, err := strconv.Atoi(id)
		if err != nil || n < 0 {
			logging.L().WithField("tile", id).Warn("ignoring non-numeric tile property key")
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	lvl.classByTile = make([]TileClass, maxID+1)
	for id, props := range raw.TileProperties {
		n, err := strconv.Atoi(id)
		if err != nil || n < 0 {
			continue
		}
		lvl.classByTile[n] = classFromString(props.CollisionType)
	}

	for _, rl := range raw.Layers {
		layer := Layer{Name: rl.Name, grid: make([]int, raw.MapCols*raw.MapRows)}
		for i := range layer.grid {
			layer.grid[i] = -1
		}
		for _, t := range rl.Tiles {
			if t.X < 0 || t.X >= raw.MapCols || t.Y < 0 || t.Y >= raw.MapRows {
				continue
			}
			layer.grid[t.Y*raw.MapCols+t.X] = t.T
			layer.Tiles = append(layer.Tiles, PlacedTile{X: t.X, Y: t.Y, T: t.T})
		}
		lvl.Layers = append(lvl.Layers, layer)
	}

	if err := lvl.loadTileset(fsys, mapPath, raw, scale); err != nil {
		logging.L().WithFields(logrus.Fields{"map": mapPath, "tileset": raw.Tileset}).
			WithError(err).Warn("tileset unavailable, tiles will render as placeholders")
	}
	return lvl, nil
}

// loadTileset slices the tileset image honoring margin and spacing, scaling
// each cell as it goes.
func (l *Level) loadTileset(fsys fs.FS, mapPath string, raw *rawMap, scale int) error {
	if raw.Tileset == "" {
		return fmt.Errorf("no tileset declared")
	}
	// Tileset paths are relative to the asset root, one level above maps/.
	p := path.Join(path.Dir(mapPath), "..", raw.Tileset)
	f, err := fsys.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", p, err)
	}

	img := ebiten.NewImageFromImage(src)
	ts, margin, spacing := raw.TileSize, raw.Margin, raw.Spacing
	cols := (src.Bounds().Dx() - 2*margin + spacing) / (ts + spacing)
	rows := (src.Bounds().Dy() - 2*margin + spacing) / (ts + spacing)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := margin + col*(ts+spacing)
			y := margin + row*(ts+spacing)
			cell := img.SubImage(image.Rect(x, y, x+ts, y+ts)).(*ebiten.Image)
			out := ebiten.NewImage(ts*scale, ts*scale)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(scale), float64(scale))
			out.DrawImage(cell, op)
			l.Tiles = append(l.Tiles, out)
		}
	}
	return nil
}

// Class returns the collision class of a tile id.
func (l *Level) Class(tileID int) TileClass {
	if tileID < 0 || tileID >= len(l.classByTile) {
		return ClassNone
	}
	return l.classByTile[tileID]
}

// TileAt returns the tile id at a grid cell of a layer, -1 when empty or
// out of bounds.
func (l *Level) TileAt(layer, tx, ty int) int {
	if layer < 0 || layer >= len(l.Layers) {
		return -1
	}
	if tx < 0 || tx >= l.Cols || ty < 0 || ty >= l.Rows {
		return -1
	}
	return l.Layers[layer].grid[ty*l.Cols+tx]
}

// ClassAt returns the collision class at a grid cell, checking every layer
// and keeping the strongest class found (solid over platform over damage).
func (l *Level) ClassAt(tx, ty int) TileClass {
	best := ClassNone
	for i := range l.Layers {
		c := l.Class(l.TileAt(i, tx, ty))
		if classPriority(c) > classPriority(best) {
			best = c
		}
	}
	return best
}

func classPriority(c TileClass) int {
	switch c {
	case ClassSolid:
		return 3
	case ClassPlatform:
		return 2
	case ClassDamage:
		return 1
	default:
		return 0
	}
}

// CollisionTiles returns every grid cell that carries a collision class,
// one entry per cell.
func (l *Level) CollisionTiles() []CollisionTile {
	var out []CollisionTile
	for ty := 0; ty < l.Rows; ty++ {
		for tx := 0; tx < l.Cols; tx++ {
			if c := l.ClassAt(tx, ty); c != ClassNone {
				out = append(out, CollisionTile{X: tx, Y: ty, Class: c})
			}
		}
	}
	return out
}

// PixelWidth is the level width in scaled pixels.
func (l *Level) PixelWidth() int { return l.Cols * l.TileSize }

// PixelHeight is the level height in scaled pixels.
func (l *Level) PixelHeight() int { return l.Rows * l.TileSize }

// FindSpawn locates a named spawn object and returns its position in scaled
// world pixels. Names match case-insensitively; the map editor capitalizes
// them.
func (l *Level) FindSpawn(name string) (float64, float64, bool) {
	for _, o := range l.Objects {
		if o.Type == "spawn" && strings.EqualFold(o.Name, name) {
			return float64(o.X * l.TileSize), float64(o.Y * l.TileSize), true
		}
	}
	return 0, 0, false
}

// ObjectsByType returns all placed objects of one type.
func (l *Level) ObjectsByType(typ string) []Object {
	var out []Object
	for _, o := range l.Objects {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}

// EnemySpawn is an enemy placement in scaled world pixels.
type EnemySpawn struct {
	Name string
	X, Y float64
}

// EnemySpawns lists the map's enemy placements.
func (l *Level) EnemySpawns() []EnemySpawn {
	var out []EnemySpawn
	for _, o := range l.ObjectsByType("enemy") {
		out = append(out, EnemySpawn{
			Name: o.Name,
			X:    float64(o.X * l.TileSize),
			Y:    float64(o.Y * l.TileSize),
		})
	}
	return out
}

// CollectibleSpawn is a pickup placement in scaled world pixels.
type CollectibleSpawn struct {
	Name string
	Kind string
	X, Y float64
}

// CollectibleSpawns lists the map's pickup placements. The kind comes from
// a custom property when present, defaulting to bandage.
func (l *Level) CollectibleSpawns() []CollectibleSpawn {
	var out []CollectibleSpawn
	for _, o := range l.ObjectsByType("collectible") {
		kind := "bandage"
		if raw, ok := o.Custom["kind"]; ok {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				kind = s
			}
		}
		out = append(out, CollectibleSpawn{
			Name: o.Name,
			Kind: kind,
			X:    float64(o.X * l.TileSize),
			Y:    float64(o.Y * l.TileSize),
		})
	}
	return out
}

// ChestSpawn is a chest placement in scaled world pixels.
type ChestSpawn struct {
	Kind string
	X, Y float64
}

// ChestSpawns lists the map's chest placements. A "gold" in the object name
// marks the rarer chest kind.
func (l *Level) ChestSpawns() []ChestSpawn {
	var out []ChestSpawn
	for _, o := range l.ObjectsByType("chest") {
		kind := "basic"
		if strings.Contains(strings.ToLower(o.Name), "gold") {
			kind = "gold"
		}
		out = append(out, ChestSpawn{
			Kind: kind,
			X:    float64(o.X * l.TileSize),
			Y:    float64(o.Y * l.TileSize),
		})
	}
	return out
}

// PlatformPath is a moving platform route in scaled world pixels.
type PlatformPath struct {
	FromX, FromY float64
	ToX, ToY     float64
	Duration     float64
}

// PlatformPaths lists the map's moving platform routes. The destination and
// travel time come from custom properties.
func (l *Level) PlatformPaths() []PlatformPath {
	var out []PlatformPath
	for _, o := range l.ObjectsByType("platform_path") {
		out = append(out, PlatformPath{
			FromX:    float64(o.X * l.TileSize),
			FromY:    float64(o.Y * l.TileSize),
			ToX:      o.FloatProp("to_x", float64(o.X)) * float64(l.TileSize),
			ToY:      o.FloatProp("to_y", float64(o.Y)) * float64(l.TileSize),
			Duration: o.FloatProp("duration", 3),
		})
	}
	return out
}
