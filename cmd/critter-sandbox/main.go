// Command critter-sandbox runs moving critters in the terminal
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/critter/config"
	"github.com/lixenwraith/critter/pattern"
)

var (
	configFlag  = flag.String("config", "", "Settings file (TOML)")
	patternFlag = flag.String("pattern", "", "Movement pattern: random, straight, peek, wander, pounce, leap, circle, edges, billiards")
	countFlag   = flag.Int("count", 0, "Number of critters, 1-10")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/critter.log")
)

func main() {
	flag.Parse()

	cfg, err := loadSettings(*configFlag, *patternFlag, *countFlag, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(2)
	}

	log, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCRITTER SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	sb, err := newSandbox(screen, cfg, log, nil)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start sandbox: %v\n", err)
		os.Exit(1)
	}
	sb.initAudio()

	sb.run()
	sb.cleanup()
	screen.Fini()
}

// loadSettings reads the settings file and applies flag overrides
func loadSettings(path, patternName string, count int, verbose bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if patternName != "" {
		id, err := pattern.ParseID(patternName)
		if err != nil {
			return nil, err
		}
		cfg.SetPattern(id)
	}
	if count > 0 {
		cfg.ObjectCount = count
	}
	if verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
