package maplib

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

// GroundType is the static base layer of a cell
type GroundType uint8

const (
	GroundLand GroundType = iota
	GroundWater
)

func (g GroundType) String() string {
	switch g {
	case GroundLand:
		return "Ground"
	case GroundWater:
		return "Water"
	}
	return "Unknown"
}

// TerrainType is the static overlay of a cell, it modifies movement cost
type TerrainType uint8

const (
	TerrainNone TerrainType = iota
	TerrainStreet
	TerrainForest
)

func (t TerrainType) String() string {
	switch t {
	case TerrainNone:
		return "None"
	case TerrainStreet:
		return "Street"
	case TerrainForest:
		return "Forest"
	}
	return "Unknown"
}

var (
	ErrUnknownGroundCode  = errors.New("unsupported ground code")
	ErrUnknownTerrainCode = errors.New("unsupported terrain code")
	ErrUnknownUnitDef     = errors.New("unknown unit definition")
)

// GroundFromCode maps an int-grid ground code
func GroundFromCode(code int) (GroundType, error) {
	switch code {
	case 1:
		return GroundLand, nil
	case 2:
		return GroundWater, nil
	}
	return 0, fmt.Errorf("%w %d", ErrUnknownGroundCode, code)
}

// TerrainFromCode maps an int-grid terrain code. Codes 1-4 are street
// pieces that only differ visually.
func TerrainFromCode(code int) (TerrainType, error) {
	switch code {
	case 0:
		return TerrainNone, nil
	case 1, 2, 3, 4:
		return TerrainStreet, nil
	case 5:
		return TerrainForest, nil
	}
	return 0, fmt.Errorf("%w %d", ErrUnknownTerrainCode, code)
}

// UnitDef describes a kind of unit a level can place
type UnitDef struct {
	Team   core.Team     `yaml:"team"`
	Unit   core.UnitType `yaml:"unit"`
	Sprite string        `yaml:"sprite"`
}

// Placement puts one unit of a definition on a cell
type Placement struct {
	Def string `yaml:"def"`
	Pos [2]int `yaml:"pos"`
}

// levelFile is the on-disk layout
type levelFile struct {
	Name    string             `yaml:"name"`
	Ground  [][]int            `yaml:"ground"`
	Terrain [][]int            `yaml:"terrain"`
	Defs    map[string]UnitDef `yaml:"defs"`
	Units   []Placement        `yaml:"units"`
}

// Level is the static board: ground and terrain grids of equal size plus
// the starting units
type Level struct {
	Name    string
	Ground  *grid.Grid[GroundType]
	Terrain *grid.Grid[TerrainType]
	Defs    map[string]UnitDef
	Units   []Placement
}

// NewLevel creates an all-ground, no-terrain level
func NewLevel(name string, width, height int) *Level {
	return &Level{
		Name:    name,
		Ground:  grid.New(width, height, GroundLand),
		Terrain: grid.New(width, height, TerrainNone),
		Defs:    make(map[string]UnitDef),
	}
}

func (l *Level) Width() int  { return l.Ground.Width }
func (l *Level) Height() int { return l.Ground.Height }

// GroundAt returns the ground of the nearest in-bounds cell
func (l *Level) GroundAt(p grid.Pos) GroundType { return l.Ground.GetClampedV(p) }

// TerrainAt returns the terrain of the nearest in-bounds cell
func (l *Level) TerrainAt(p grid.Pos) TerrainType { return l.Terrain.GetClampedV(p) }

// SetTerrain sets terrain for a rectangular region
func (l *Level) SetTerrain(x1, y1, x2, y2 int, terrain TerrainType) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if l.Terrain.InBounds(x, y) {
				l.Terrain.Set(x, y, terrain)
			}
		}
	}
}

// SetGround sets ground for a rectangular region
func (l *Level) SetGround(x1, y1, x2, y2 int, ground GroundType) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if l.Ground.InBounds(x, y) {
				l.Ground.Set(x, y, ground)
			}
		}
	}
}

// Spawn inserts the level's units into store, in listing order
func (l *Level) Spawn(store *core.Store, gridSize int) ([]core.ActorID, error) {
	ids := make([]core.ActorID, 0, len(l.Units))
	for _, u := range l.Units {
		def, ok := l.Defs[u.Def]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownUnitDef, u.Def)
		}
		pos := grid.Pos{X: u.Pos[0], Y: u.Pos[1]}
		if !l.Ground.Contains(pos) {
			return nil, fmt.Errorf("unit %q placed off the map at %v", u.Def, pos)
		}
		sprite := def.Sprite
		if sprite == "" {
			sprite = u.Def
		}
		ids = append(ids, store.Insert(core.NewActor(pos, def.Team, def.Unit, sprite, gridSize)))
	}
	return ids, nil
}

// DefNames returns the unit definition names sorted
func (l *Level) DefNames() []string {
	names := make([]string, 0, len(l.Defs))
	for n := range l.Defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func layerGrid[T any](name string, rows [][]int, conv func(int) (T, error)) (*grid.Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s layer is empty", name)
	}
	w, h := len(rows[0]), len(rows)
	var zero T
	g := grid.New(w, h, zero)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%s layer row %d has %d cells, want %d", name, y, len(row), w)
		}
		for x, code := range row {
			v, err := conv(code)
			if err != nil {
				return nil, fmt.Errorf("%s layer at (%d,%d): %w", name, x, y, err)
			}
			g.Set(x, y, v)
		}
	}
	return g, nil
}

// ParseLevel decodes a YAML level
func ParseLevel(data []byte) (*Level, error) {
	var lf levelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	ground, err := layerGrid("ground", lf.Ground, GroundFromCode)
	if err != nil {
		return nil, err
	}
	terrain, err := layerGrid("terrain", lf.Terrain, TerrainFromCode)
	if err != nil {
		return nil, err
	}
	if !grid.SameSize(ground, terrain) {
		return nil, fmt.Errorf("terrain layer is %dx%d, ground is %dx%d",
			terrain.Width, terrain.Height, ground.Width, ground.Height)
	}
	l := &Level{
		Name:    lf.Name,
		Ground:  ground,
		Terrain: terrain,
		Defs:    lf.Defs,
		Units:   lf.Units,
	}
	if l.Defs == nil {
		l.Defs = make(map[string]UnitDef)
	}
	for _, u := range l.Units {
		if _, ok := l.Defs[u.Def]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownUnitDef, u.Def)
		}
	}
	return l, nil
}

// LoadLevel reads a YAML level file
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Level %q: %dx%d, %d unit defs, %d units", l.Name, l.Width(), l.Height(), len(l.Defs), len(l.Units))
	return l, nil
}

//go:embed levels/*.yaml
var builtin embed.FS

// Builtin loads a level shipped with the engine, e.g. "river_crossing"
func Builtin(name string) (*Level, error) {
	data, err := builtin.ReadFile("levels/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("builtin level %q: %w", name, err)
	}
	return ParseLevel(data)
}

// Open loads name as a builtin level, or as a YAML file when it names one
func Open(name string) (*Level, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") || strings.ContainsRune(name, os.PathSeparator) {
		return LoadLevel(name)
	}
	return Builtin(name)
}
