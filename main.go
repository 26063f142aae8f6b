// game2048 places random tiles on an empty 2048 board and prints the result.
//
// Usage:
//
//	game2048 [-config game.hcl] [-size 4] [-seed 42] [-count 2] [-tui]
//
// Flags override values from the config file. With -tui the board is shown
// on the terminal until a key is pressed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"game2048/internal/board"
	"game2048/internal/component"
	"game2048/internal/config"
	"game2048/internal/ecs"
	"game2048/internal/factory"
	"game2048/internal/render"
	"game2048/internal/rng"
	"game2048/internal/spawnlog"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	tui        bool
	noLog      bool
	set        map[string]bool
	size       int
	seed       int64
	count      int
	logLevel   string
	logFormat  string
}

func parseFlags(args []string, errOut io.Writer) (*options, error) {
	fs := flag.NewFlagSet("game2048", flag.ContinueOnError)
	fs.SetOutput(errOut)

	o := &options{set: make(map[string]bool)}
	fs.StringVar(&o.configPath, "config", "", "Path to an HCL config file")
	fs.IntVar(&o.size, "size", component.DefaultGridSize, "Grid side length")
	fs.Int64Var(&o.seed, "seed", 0, "Random seed (0 = time based)")
	fs.IntVar(&o.count, "count", 2, "Number of tiles to spawn")
	fs.BoolVar(&o.tui, "tui", false, "Show the board in the terminal until a key is pressed")
	fs.BoolVar(&o.noLog, "no-log", false, "Do not append the session to the spawn log")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "text", "Log format: text or json")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// resolveConfig loads the config file, if any, and applies explicit flags.
func resolveConfig(o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.set["size"] {
		cfg.Grid.Size = o.size
	}
	if o.set["seed"] {
		cfg.Spawn.Seed = o.seed
	}
	if o.set["count"] {
		cfg.Spawn.Count = o.count
	}
	if o.set["log-level"] {
		cfg.Log.Level = o.logLevel
	}
	if o.set["log-format"] {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(out, errOut io.Writer, args []string) error {
	o, err := parseFlags(args, errOut)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(o)
	if err != nil {
		return err
	}
	logger := cfg.Log.NewLogger(errOut)

	seed := cfg.Spawn.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "grid_size", cfg.Grid.Size, "seed", seed, "count", cfg.Spawn.Count)

	w := ecs.NewWorld()
	spawner := factory.NewSpawner(w, cfg.Grid.Size, rng.New(seed), logger)
	ids, err := spawner.Fill(cfg.Spawn.Count)
	gridFull := errors.Is(err, component.ErrGridFull)
	switch {
	case gridFull:
		logger.Warn("grid filled before all tiles were placed",
			"requested", cfg.Spawn.Count, "placed", len(ids))
	case err != nil:
		return err
	}

	b := board.FromWorld(w, cfg.Grid.Size)
	logger.Debug("board ready", "tiles", len(b.Occupied()), "free", b.Free())
	if !o.noLog {
		spawnlog.Save(sessionRecord(w, ids, cfg, seed, gridFull), logger)
	}

	if o.tui {
		return showBoard(b)
	}
	_, err = io.WriteString(out, render.Text(b))
	return err
}

func sessionRecord(w *ecs.World, ids []ecs.EntityID, cfg *config.Config, seed int64, gridFull bool) spawnlog.Record {
	rec := spawnlog.Record{
		Timestamp: time.Now(),
		Seed:      seed,
		GridSize:  cfg.Grid.Size,
		Requested: cfg.Spawn.Count,
		GridFull:  gridFull,
	}
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		tile := w.Get(id, component.CTile).(component.Tile)
		rec.Spawned = append(rec.Spawned, spawnlog.Spawn{X: pos.X, Y: pos.Y, Value: tile.Value})
	}
	return rec
}

// showBoard draws b on the terminal and waits for any key.
func showBoard(b *board.Board) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	r := render.NewRenderer(screen)
	r.DrawBoard(b)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			r.DrawBoard(b)
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}
