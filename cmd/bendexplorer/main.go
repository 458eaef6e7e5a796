package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/cmd/bendexplorer/logger"
	"github.com/joshuapare/bendkit/pkg/bend"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("bendexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting bendexplorer", "path", path, "debug", debugMode)

	data, err := bend.ReadFile(path)
	if err != nil {
		logger.Error("file not readable", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", path, err)
		os.Exit(1)
	}

	cfg, err := LoadConfig()
	if err != nil {
		// A broken config file is not fatal; fall back to defaults.
		logger.Warn("config load failed, using defaults", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}

	// Create the TUI model
	m := NewModel(path, data, cfg)

	// Create the Bubbletea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("bendexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: bendexplorer [options] <file>\n")
	fmt.Fprintf(os.Stderr, "Try 'bendexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("bendexplorer - Interactive hex editor for databending")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  bendexplorer [options] <file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Opens a file in an interactive terminal hex editor built for bending")
	fmt.Println("  binary data: images, audio, video, anything you want to corrupt on")
	fmt.Println("  purpose. The file on disk is never touched until you save.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Hex grid with offset, hex and ASCII columns")
	fmt.Println("    - Hex nibble and ASCII editing, insert/overwrite modes")
	fmt.Println("    - Undo/redo with keystroke coalescing")
	fmt.Println("    - Hex and ASCII search with ?? wildcards (/, ctrl+f)")
	fmt.Println("    - Fixed-width replace over search matches")
	fmt.Println("    - Named save points you can roll back to (s)")
	fmt.Println("    - Bookmarks with annotations (b, B)")
	fmt.Println("    - Copy/cut/paste selections as hex text")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/↓/←/→     Move cursor")
	fmt.Println("    shift+arrows Select bytes")
	fmt.Println("    pgup/pgdn   Page up/down")
	fmt.Println("    g           Go to offset (0x prefix for hex)")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.bendexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  bendexplorer photo.jpg")
	fmt.Println("  bendexplorer --debug track.wav")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'bendctl' command instead.")
}
