package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/input"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/render"
	"github.com/1siamBot/tactics-engine/engine/replay"
	"github.com/1siamBot/tactics-engine/engine/turn"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TickRate     = 60.0
)

// Game implements ebiten.Game interface
type Game struct {
	state    *turn.State
	renderer *render.Renderer
	input    *input.InputState
	recorder *replay.Recorder

	showPanel bool
}

func NewGame(level *maplib.Level, rules config.Rules) (*Game, error) {
	state, err := turn.New(level, rules, TickRate)
	if err != nil {
		return nil, err
	}
	g := &Game{
		state:    state,
		renderer: render.NewRenderer(ScreenWidth, ScreenHeight, rules.GridSize),
		input:    input.NewInputState(),

		showPanel: true,
	}

	cam := g.renderer.Camera
	cam.SetZoom(3)
	cam.SetMapBounds(level.Width(), level.Height(), rules.GridSize)
	cam.CenterOn(float64(level.Width()*rules.GridSize)/2, float64(level.Height()*rules.GridSize)/2)

	state.Loop.Events.OnAny(logEvent)
	return g, nil
}

func logEvent(e core.Event) {
	slog.Debug("event", "tick", e.Tick, "type", e.Type, "payload", fmt.Sprintf("%+v", e.Payload))
}

func (g *Game) Update() error {
	g.input.Update()
	g.input.MoveCamera(g.renderer.Camera)

	if g.input.IsKeyJustPressed(ebiten.KeyF1) {
		g.showPanel = !g.showPanel
	}
	if g.input.IsKeyJustPressed(ebiten.KeyF6) {
		if err := g.state.Debug.CopyToClipboard(); err != nil {
			slog.Warn("copy debug report", "err", err)
		}
	}

	in := g.input.Snapshot(g.renderer.Camera, g.state.Rules.GridSize)
	g.state.Update(in, g.state.Loop.FixedDelta())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state.Draw.Sorted())
	if g.showPanel {
		g.renderer.DrawPanel(screen, g.state.Debug.Lines())
	}
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	info := fmt.Sprintf(
		"%s | %s phase | FPS: %.0f | Tick: %d | Zoom: %.1fx\n"+
			"[LClick] Select/Move [Space] Stay [W] Wait [A] Attack [Esc] Cancel [End] End phase\n"+
			"[MDrag/Shift+WASD] Pan [Scroll] Zoom [L/M] Fields [F1] Debug [F6] Copy log",
		g.state.Level.Name, g.state.Phase,
		ebiten.ActualFPS(), g.state.Loop.CurrentTick(), g.renderer.Camera.Zoom,
	)
	ebitenutil.DebugPrintAt(screen, info, 8, ScreenHeight-52)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "rules YAML file (defaults when empty)")
	levelName := flag.String("level", "river_crossing", "builtin level name or level YAML path")
	replayPath := flag.String("replay", "", "record committed commands to this file")
	verbose := flag.Bool("v", false, "log every event")
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	rules, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := maplib.Open(*levelName)
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(level, rules)
	if err != nil {
		log.Fatal(err)
	}
	if *replayPath != "" {
		rec, err := replay.Create(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		rec.Listen(game.state.Loop.Events)
		game.recorder = rec
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("replay: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tactics: " + level.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(int(TickRate))

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}
