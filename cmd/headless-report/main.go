// Command headless-report plays enemy phases against an idle player and
// prints where every unit stands after each one.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/turn"
)

const tickRate = 60.0

func main() {
	configPath := flag.String("config", "", "rules YAML file (defaults when empty)")
	levelName := flag.String("level", "river_crossing", "builtin level name or level YAML path")
	phases := flag.Int("phases", 5, "enemy phases to run")
	maxFrames := flag.Int("max-frames", 100000, "frame limit per phase")
	flag.Parse()

	rules, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := maplib.Open(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	state, err := turn.New(level, rules, tickRate)
	if err != nil {
		log.Fatal(err)
	}

	reports, err := Simulate(state, *phases, *maxFrames)
	if werr := WriteReport(os.Stdout, reports); werr != nil {
		log.Fatal(werr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
