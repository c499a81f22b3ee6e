package render

import (
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

var (
	blueTeam  = color.RGBA{60, 110, 230, 255}
	redTeam   = color.RGBA{220, 60, 50, 255}
	outline   = color.RGBA{20, 20, 20, 255}
	arrowTint = color.RGBA{250, 240, 120, 255}
)

// SpriteManager hands out one image per sprite name. A PNG of the same name
// under assets/sprites overrides the generated image.
type SpriteManager struct {
	size    int
	face    text.Face
	dir     string
	sprites map[string]*ebiten.Image
}

// NewSpriteManager builds sprites for cells of size pixels and preloads
// every known name
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		size:    size,
		face:    text.NewGoXFace(basicfont.Face7x13),
		dir:     filepath.Join(getAssetsDir(), "sprites"),
		sprites: make(map[string]*ebiten.Image),
	}

	names := []string{"ground", "water", "street", "forest", "move_range", "cursor", "hp_question"}
	for _, team := range []string{"blue", "red"} {
		for _, unit := range []string{"infantry", "tank"} {
			names = append(names, team+"_"+unit)
		}
	}
	for _, a := range []string{"we", "ns", "ne", "se", "wn", "ws", "w", "e", "n", "s"} {
		names = append(names, "arrow_"+a)
	}
	for hp := range 10 {
		names = append(names, "hp_"+string(rune('0'+hp)))
	}

	loaded := 0
	for _, name := range names {
		if img := loadFromFile(filepath.Join(sm.dir, name+".png"), size); img != nil {
			sm.sprites[name] = img
			loaded++
			continue
		}
		sm.sprites[name] = sm.generate(name)
	}
	log.Printf("SpriteManager: %d sprites (%d from %s)", len(sm.sprites), loaded, sm.dir)
	return sm
}

// Get returns the sprite for name, generating it on first use
func (sm *SpriteManager) Get(name string) *ebiten.Image {
	if img, ok := sm.sprites[name]; ok {
		return img
	}
	img := loadFromFile(filepath.Join(sm.dir, name+".png"), sm.size)
	if img == nil {
		img = sm.generate(name)
	}
	sm.sprites[name] = img
	return img
}

func (sm *SpriteManager) generate(name string) *ebiten.Image {
	s := sm.size
	fs := float32(s)
	img := ebiten.NewImage(s, s)

	switch {
	case name == "ground":
		img.Fill(color.RGBA{110, 170, 80, 255})
	case name == "water":
		img.Fill(color.RGBA{50, 100, 190, 255})
		vector.StrokeLine(img, fs*0.2, fs*0.4, fs*0.5, fs*0.4, 1, color.RGBA{150, 190, 240, 255}, false)
		vector.StrokeLine(img, fs*0.5, fs*0.7, fs*0.8, fs*0.7, 1, color.RGBA{150, 190, 240, 255}, false)
	case name == "street":
		vector.DrawFilledRect(img, 0, fs*0.25, fs, fs*0.5, color.RGBA{150, 150, 140, 255}, false)
	case name == "forest":
		drawTree(img, fs*0.3, fs*0.35, fs*0.22)
		drawTree(img, fs*0.7, fs*0.65, fs*0.22)
	case name == "move_range":
		img.Fill(color.RGBA{80, 140, 255, 90})
	case name == "cursor":
		vector.StrokeRect(img, 1, 1, fs-2, fs-2, 2, color.White, false)
	case strings.HasPrefix(name, "arrow_"):
		drawArrow(img, strings.TrimPrefix(name, "arrow_"))
	case strings.HasPrefix(name, "hp_"):
		label := strings.TrimPrefix(name, "hp_")
		if label == "question" {
			label = "?"
		}
		img = ebiten.NewImage(s/2+1, s/2+3)
		img.Fill(outline)
		op := &text.DrawOptions{}
		op.GeoM.Scale(0.6, 0.6)
		op.GeoM.Translate(1, 0)
		text.Draw(img, label, sm.face, op)
	case strings.HasPrefix(name, "blue_"), strings.HasPrefix(name, "red_"):
		body := blueTeam
		if strings.HasPrefix(name, "red_") {
			body = redTeam
		}
		if strings.HasSuffix(name, "_tank") {
			vector.DrawFilledRect(img, fs*0.15, fs*0.3, fs*0.7, fs*0.5, body, false)
			vector.StrokeRect(img, fs*0.15, fs*0.3, fs*0.7, fs*0.5, 1, outline, false)
			vector.StrokeLine(img, fs*0.5, fs*0.5, fs*0.95, fs*0.35, 2, outline, false)
		} else {
			vector.DrawFilledCircle(img, fs/2, fs/2, fs*0.3, body, true)
			vector.StrokeCircle(img, fs/2, fs/2, fs*0.3, 1, outline, true)
		}
	default:
		img.Fill(color.RGBA{255, 0, 255, 255})
	}
	return img
}

var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func drawTree(img *ebiten.Image, cx, cy, r float32) {
	clr := color.RGBA{30, 100, 40, 255}
	var path vector.Path
	path.MoveTo(cx, cy-r)
	path.LineTo(cx+r, cy+r)
	path.LineTo(cx-r, cy+r)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	img.DrawTriangles(vs, is, whiteImg, nil)
}

// drawArrow draws a path segment. Two letters name the sides the segment
// joins, one letter is the path end and names the direction of travel.
func drawArrow(img *ebiten.Image, sides string) {
	fs := float32(img.Bounds().Dx())
	c := fs / 2
	edge := map[byte][2]float32{
		'w': {0, c},
		'e': {fs, c},
		'n': {c, 0},
		's': {c, fs},
	}
	if len(sides) == 1 {
		back := map[byte]byte{'w': 'e', 'e': 'w', 'n': 's', 's': 'n'}
		sides = string(back[sides[0]])
		defer vector.DrawFilledCircle(img, c, c, fs*0.2, arrowTint, true)
	}
	for i := 0; i < len(sides); i++ {
		p, ok := edge[sides[i]]
		if !ok {
			continue
		}
		vector.StrokeLine(img, c, c, p[0], p[1], 3, arrowTint, true)
	}
}

func getAssetsDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "assets")
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(filename), "..", "..", "assets")
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	return "assets"
}

// loadFromFile decodes a PNG and scales it to fit a size x size cell. It
// returns nil when the file is missing or unreadable.
func loadFromFile(path string, size int) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		log.Printf("Warning: could not decode sprite %s: %v", path, err)
		return nil
	}

	b := src.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return ebiten.NewImageFromImage(src)
	}
	scale := min(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy()))
	dst := image.NewRGBA(image.Rect(0, 0, max(1, int(float64(b.Dx())*scale)), max(1, int(float64(b.Dy())*scale))))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return ebiten.NewImageFromImage(dst)
}
