// Package main provides the CLI entry point for streamview.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/streamview/pkg/adapters/annexbsource"
	"github.com/user/streamview/pkg/adapters/avcdecoder"
	"github.com/user/streamview/pkg/adapters/fynewindow"
	"github.com/user/streamview/pkg/adapters/ggsurface"
	"github.com/user/streamview/pkg/adapters/logger"
	"github.com/user/streamview/pkg/adapters/mp4source"
	"github.com/user/streamview/pkg/config"
	"github.com/user/streamview/pkg/player"
	"github.com/user/streamview/pkg/ports"
	"github.com/user/streamview/pkg/renderer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Play    PlayCmd    `cmd:"" help:"Decode an H.264 stream and present it."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// PlayCmd defines the play subcommand.
type PlayCmd struct {
	// Required arguments
	Input string `arg:"" help:"Input file (fragmented MP4 or raw Annex B stream)."`

	// Output
	Output string `short:"o" help:"Write the final frame as PNG (headless mode only)."`

	// Presentation
	Window bool `short:"w" help:"Present in a desktop window instead of headless."`
	FPS    *int `short:"r" help:"Presentation rate in frames per second (default: 30)."`

	// Stream geometry (overrides values read from the stream)
	Width  *int `short:"W" help:"Decoded stream width in pixels."`
	Height *int `short:"H" help:"Decoded stream height in pixels."`

	// Surface geometry (headless mode)
	SurfaceWidth  *int `help:"Headless surface width (default: 1280)."`
	SurfaceHeight *int `help:"Headless surface height (default: 720)."`

	// Style
	BackgroundColor *string `help:"Letterbox bar color (hex, e.g., #000000)."`

	// Config file
	Config string `short:"c" help:"Path to a YAML configuration file."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("streamview"),
		kong.Description("Decode H.264 streams and present them at a fixed rate."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the play command.
func (cmd *PlayCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Open the stream
	source, err := openSource(cfg.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer source.Close()

	// Resolve stream geometry
	width, height := source.Dimensions()
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	if width <= 0 || height <= 0 {
		return errors.New(l10n.T("stream dimensions unknown, pass --width and --height"))
	}

	// Create decoder and renderer
	dec := avcdecoder.New()
	rend := renderer.New(dec, log)
	defer rend.Release()

	p := player.New(source, rend, log)

	log.Info(l10n.F("Playing %s...", cfg.Input))

	if cfg.Window {
		return cmd.runWindowed(ctx, cancel, cfg, rend, p, width, height, log)
	}
	return cmd.runHeadless(ctx, cfg, rend, p, width, height, log)
}

// runHeadless plays the stream against an in-memory surface and optionally
// saves the final frame.
func (cmd *PlayCmd) runHeadless(ctx context.Context, cfg config.Config, rend *renderer.Renderer, p *player.Player, width, height int, log ports.Logger) error {
	surface := ggsurface.New(cfg.SurfaceWidth, cfg.SurfaceHeight, config.ParseColor(cfg.BackgroundColor))

	if err := rend.Setup(width, height, surface, cfg.FPS); err != nil {
		return fmt.Errorf("setup renderer: %w", err)
	}
	log.Info(l10n.F("Decoder initialized: %dx%d at %d fps", width, height, cfg.FPS))

	if _, err := p.Play(ctx, cfg.FPS); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if cfg.Output != "" {
		if err := surface.SnapshotPNG(cfg.Output); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		log.Info(l10n.F("Snapshot saved to %s", cfg.Output))
	}
	return nil
}

// runWindowed plays the stream into a desktop window. The window's event
// loop owns the main goroutine; playback runs alongside it and the window
// closing cancels playback.
func (cmd *PlayCmd) runWindowed(ctx context.Context, cancel context.CancelFunc, cfg config.Config, rend *renderer.Renderer, p *player.Player, width, height int, log ports.Logger) error {
	win := fynewindow.New(cfg.Title, cfg.SurfaceWidth, cfg.SurfaceHeight)

	if err := rend.Setup(width, height, win, cfg.FPS); err != nil {
		return fmt.Errorf("setup renderer: %w", err)
	}
	log.Info(l10n.F("Decoder initialized: %dx%d at %d fps", width, height, cfg.FPS))

	playDone := make(chan error, 1)
	go func() {
		_, err := p.Play(ctx, cfg.FPS)
		playDone <- err
	}()

	win.ShowAndRun()

	cancel()
	if err := <-playDone; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openSource picks a source adapter by file extension.
func openSource(path string) (ports.UnitSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return mp4source.Open(path)
	default:
		return annexbsource.Open(path)
	}
}

// buildConfig creates a Config from defaults, an optional file, and CLI overrides.
func (cmd *PlayCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()

	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Input = cmd.Input
	if cmd.Output != "" {
		cfg.Output = cmd.Output
	}
	if cmd.Window {
		cfg.Window = true
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.Height = *cmd.Height
	}
	if cmd.SurfaceWidth != nil {
		cfg.SurfaceWidth = *cmd.SurfaceWidth
	}
	if cmd.SurfaceHeight != nil {
		cfg.SurfaceHeight = *cmd.SurfaceHeight
	}
	if cmd.BackgroundColor != nil {
		cfg.BackgroundColor = *cmd.BackgroundColor
	}
	if cmd.LogLevel != "" {
		cfg.LogLevel = cmd.LogLevel
	}

	if cfg.FPS <= 0 {
		return cfg, fmt.Errorf("invalid fps: %d", cfg.FPS)
	}
	return cfg, nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("streamview (Go) version %s", version))
	return nil
}
