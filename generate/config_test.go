package generate

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"shadowgen/shadow"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shadows.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
output_dir: /tmp/shadows
radius: 24
color: "#0008"
workers: 3
images:
  sprites/hero.png: hero_shadow
  sprites/tree.png: tree_shadow
`)

	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if conf.OutputDir != "/tmp/shadows" {
		t.Errorf("OutputDir = %q, want /tmp/shadows", conf.OutputDir)
	}
	if conf.Radius == nil || *conf.Radius != 24 {
		t.Errorf("Radius = %v, want 24", conf.Radius)
	}
	if conf.Color != "#0008" {
		t.Errorf("Color = %q, want #0008", conf.Color)
	}
	if conf.Workers != 3 {
		t.Errorf("Workers = %d, want 3", conf.Workers)
	}
	if len(conf.Images) != 2 || conf.Images["sprites/hero.png"] != "hero_shadow" {
		t.Errorf("Images = %v", conf.Images)
	}
}

func TestLoadConfigRadiusAbsentVsZero(t *testing.T) {
	conf, err := LoadConfig(writeConfig(t, "output_dir: out\nimages: {a.png: a}\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if conf.Radius != nil {
		t.Errorf("absent radius = %v, want nil", conf.Radius)
	}

	conf, err = LoadConfig(writeConfig(t, "output_dir: out\nradius: 0\nimages: {a.png: a}\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if conf.Radius == nil || *conf.Radius != 0 {
		t.Errorf("explicit zero radius = %v, want 0", conf.Radius)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "images: [not: a: map\n")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestParseHexToColor(t *testing.T) {
	tests := []struct {
		in   string
		want shadow.Color
	}{
		{"#000", shadow.Color{A: 1}},
		{"#fff", shadow.Color{R: 1, G: 1, B: 1, A: 1}},
		{"#f00a", shadow.Color{R: 1, A: float32(0xAA) / 255}},
		{"#102030", shadow.Color{R: float32(0x10) / 255, G: float32(0x20) / 255, B: float32(0x30) / 255, A: 1}},
		{"#80808080", shadow.Color{R: float32(0x80) / 255, G: float32(0x80) / 255, B: float32(0x80) / 255, A: float32(0x80) / 255}},
	}

	for _, tt := range tests {
		got, err := parseHexToColor(tt.in)
		if err != nil {
			t.Errorf("parseHexToColor(%q): %v", tt.in, err)
			continue
		}

		diffs := []float64{
			math.Abs(float64(got.R - tt.want.R)),
			math.Abs(float64(got.G - tt.want.G)),
			math.Abs(float64(got.B - tt.want.B)),
			math.Abs(float64(got.A - tt.want.A)),
		}
		for _, d := range diffs {
			if d > 1e-6 {
				t.Errorf("parseHexToColor(%q) = %+v, want %+v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestParseHexToColorInvalid(t *testing.T) {
	for _, in := range []string{"", "black", "#12345", "#1234567", "#gg0000"} {
		if _, err := parseHexToColor(in); err == nil {
			t.Errorf("parseHexToColor(%q): expected error", in)
		}
	}
}
