package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.FPS)
	}
	if cfg.SurfaceWidth != 1280 || cfg.SurfaceHeight != 720 {
		t.Errorf("surface = %dx%d, want 1280x720", cfg.SurfaceWidth, cfg.SurfaceHeight)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.BackgroundColor != "#000000" {
		t.Errorf("BackgroundColor = %q, want #000000", cfg.BackgroundColor)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("input: clip.mp4\nfps: 60\nsurface_width: 800\nwindow: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Input != "clip.mp4" {
		t.Errorf("Input = %q, want clip.mp4", cfg.Input)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.SurfaceWidth != 800 {
		t.Errorf("SurfaceWidth = %d, want 800", cfg.SurfaceWidth)
	}
	if !cfg.Window {
		t.Error("Window = false, want true")
	}
	// Untouched fields keep defaults.
	if cfg.SurfaceHeight != 720 {
		t.Errorf("SurfaceHeight = %d, want default 720", cfg.SurfaceHeight)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFromFile on missing file succeeded, want error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"1a2B3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}},
	}
	for _, tt := range tests {
		got := ParseColor(tt.hex)
		r, g, b, a := got.RGBA()
		wr, wg, wb, wa := tt.want.RGBA()
		if r != wr || g != wg || b != wb || a != wa {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, hex := range []string{"", "#fff", "not-a-color"} {
		if got := ParseColor(hex); got != color.Black {
			t.Errorf("ParseColor(%q) = %v, want black", hex, got)
		}
	}
}
