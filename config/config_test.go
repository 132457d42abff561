package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/txtgfx/palette"
)

func TestLoad_EmptyPathDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sink != SinkTcell || cfg.Zoom != 1 || cfg.FrameDelay != 50*time.Millisecond {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
sink = "png"
color = "256"
zoom = 3
blink = true
frame_delay = "120ms"

[palette]
1 = "#0000ff"
15 = "#808080"
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sink != SinkPNG || cfg.Color != "256" || cfg.Zoom != 3 || !cfg.Blink {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.FrameDelay != 120*time.Millisecond {
		t.Errorf("Expected 120ms delay, got %s", cfg.FrameDelay)
	}

	pal := palette.Default()
	if err := cfg.ApplyPalette(pal); err != nil {
		t.Fatalf("ApplyPalette: %v", err)
	}
	if r, g, b := pal.Get(1); r != 0 || g != 0 || b != 63 {
		t.Errorf("Expected register 1 blue, got %d,%d,%d", r, g, b)
	}
	if r, _, _ := pal.Get(15); r != 32 {
		t.Errorf("Expected register 15 gray, got %d", r)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Bad syntax", `sink = `},
		{"Unknown sink", `sink = "gl"`},
		{"Unknown color", `color = "16"`},
		{"Zero zoom", `zoom = 0`},
		{"Palette index", "[palette]\n16 = \"#ffffff\""},
		{"Palette value", "[palette]\n2 = \"green\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txtview.toml")
	if err := os.WriteFile(path, []byte(`sink = "ansi"`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sink != SinkANSI || cfg.Color != "auto" {
		t.Errorf("Expected file over defaults, got %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
