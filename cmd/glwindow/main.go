package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpgmk/displaylayer/internal/config"
	"github.com/rpgmk/displaylayer/pkg/window"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "open":
		os.Exit(runOpen(os.Args[2:]))
	case "visuals":
		os.Exit(runVisuals(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: glwindow <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  open                Open a window with a current GL context until interrupted")
	fmt.Fprintln(w, "  visuals             List GLX visuals and the one a window would use")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'glwindow <command> --help' for command options.")
}

// loadConfig reads the config file, or the default location when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func readConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Read()
	}
	return config.ReadFromPath(path)
}

func newLogger(level string) *slog.Logger {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}

func runOpen(args []string) int {
	cfg, code := openConfig(args)
	if cfg == nil {
		return code
	}

	logger := newLogger(cfg.LogLevel)
	drv := cfg.Driver()

	win, err := window.New(cfg.Window, window.Options{
		Driver:  drv,
		Display: cfg.Display,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to create window", "error", err)
		return 1
	}
	defer win.Close()

	if err := win.Show(); err != nil {
		logger.Error("failed to show window", "error", err)
		return 1
	}

	attrs, err := win.Attributes()
	if err != nil {
		logger.Error("failed to query window", "error", err)
		return 1
	}
	logger.Info("window ready",
		"backend", drv.Name(),
		"visual", fmt.Sprintf("0x%x", win.Visual().ID),
		"title", attrs.Title,
		"icon", attrs.IconPath,
		"x", attrs.X,
		"y", attrs.Y,
		"width", attrs.Width,
		"height", attrs.Height,
		"border", attrs.BorderWidth,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("closing window", "signal", sig.String())
	return 0
}

// openConfig parses the open flags over the config file and validates the
// merged result. A nil config means the command should exit with code.
func openConfig(args []string) (*config.Config, int) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file (default ~/.config/displaylayer/config.yaml)")
	display := fs.String("display", "", "X display to connect to")
	backend := fs.String("backend", "", "Backend: auto, x11 or stub")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn or error")
	title := fs.String("title", "", "Window title")
	icon := fs.String("icon", "", "Icon label")
	x := fs.Uint("x", 0, "Window x position")
	y := fs.Uint("y", 0, "Window y position")
	width := fs.Uint("width", 0, "Window width")
	height := fs.Uint("height", 0, "Window height")
	border := fs.Uint("border", 0, "Border width")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, 0
		}
		return nil, 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "open takes no positional arguments")
		return nil, 2
	}

	// Validation waits until the flag overrides are applied.
	cfg, err := readConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, 1
	}

	// Only flags given on the command line override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "display":
			cfg.Display = *display
		case "backend":
			cfg.Backend = config.BackendKind(*backend)
		case "log-level":
			cfg.LogLevel = *logLevel
		case "title":
			cfg.Window.Title = *title
		case "icon":
			cfg.Window.IconPath = *icon
		case "x":
			cfg.Window.X = uint32(*x)
		case "y":
			cfg.Window.Y = uint32(*y)
		case "width":
			cfg.Window.Width = uint32(*width)
		case "height":
			cfg.Window.Height = uint32(*height)
		case "border":
			cfg.Window.BorderWidth = uint32(*border)
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return nil, 1
	}
	return cfg, 0
}

func runConfig(args []string) int {
	if len(args) < 1 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stdout, "Usage: glwindow config <validate|print> [--config path]")
		return 0
	}

	fs := flag.NewFlagSet("config "+args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "", "Config file (default ~/.config/displaylayer/config.yaml)")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	switch args[0] {
	case "validate":
		if _, err := loadConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			return 1
		}
		fmt.Fprintln(os.Stdout, "Configuration is valid")
		return 0
	case "print":
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return 1
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode config: %v\n", err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}
