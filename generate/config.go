package generate

import (
	"fmt"
	"image/color"
	"os"

	"shadowgen/shadow"

	"gopkg.in/yaml.v3"
)

// DefaultRadius is the blur radius used when neither the configuration file
// nor the command line sets one.
const DefaultRadius = 10

// Config describes one batch of shadow generations: where the results go,
// how they are blurred and colored, and which source images map to which
// output names. A blank output name means "skip this image".
type Config struct {
	OutputDir string            `yaml:"output_dir"`
	Radius    *int              `yaml:"radius"`
	Color     string            `yaml:"color"`
	Workers   int               `yaml:"workers"`
	Images    map[string]string `yaml:"images"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read configuration %q: %w", path, err)
	}

	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration %q: %w", path, err)
	}

	return conf, nil
}

func parseHexToColor(s string) (shadow.Color, error) {
	var c color.RGBA
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return shadow.Color{}, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return shadow.Color{}, fmt.Errorf("insufficient shadow color fields: %d", n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A = 0xFF
	case 5:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x%x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return shadow.Color{}, fmt.Errorf("could not read color: %w", err)
		} else if n < 4 {
			return shadow.Color{}, fmt.Errorf("insufficient shadow color fields: %d", n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
		if err != nil {
			return shadow.Color{}, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return shadow.Color{}, fmt.Errorf("insufficient shadow color fields: %d", n)
		}

		c.A = 0xFF
	case 9:
		n, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return shadow.Color{}, fmt.Errorf("could not read color: %w", err)
		} else if n < 4 {
			return shadow.Color{}, fmt.Errorf("insufficient shadow color fields: %d", n)
		}
	default:
		return shadow.Color{}, fmt.Errorf("invalid shadow color, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA")
	}

	return shadow.Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}, nil
}
