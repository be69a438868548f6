package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"shadowgen/parallel"
	"shadowgen/shadow"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Config  string `arg:"" help:"YAML configuration listing source images and output names" type:"existingfile"`
	Out     string `help:"Output folder for generated shadows. Overrides the configuration file."`
	Radius  int    `help:"Blur radius in pixels (0-512). Overrides the configuration file." default:"-1"`
	Color   string `help:"Shadow color (#RGB, #RGBA, #RRGGBB or #RRGGBBAA). Overrides the configuration file."`
	Workers int    `help:"Worker goroutines. 0 means one per CPU." default:"0"`

	conf        Config
	radius      int
	shadowColor shadow.Color
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	conf, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	if c.Out != "" {
		conf.OutputDir = c.Out
	}
	if c.Color != "" {
		conf.Color = c.Color
	}
	if c.Workers == 0 {
		c.Workers = conf.Workers
	}

	switch {
	case c.Radius >= 0:
		c.radius = c.Radius
	case conf.Radius != nil:
		c.radius = *conf.Radius
	default:
		c.radius = DefaultRadius
	}

	conf.OutputDir = strings.TrimRight(conf.OutputDir, "/")
	if conf.OutputDir == "" {
		return fmt.Errorf("no output folder configured")
	}
	if conf.OutputDir, err = filepath.Abs(conf.OutputDir); err != nil {
		return fmt.Errorf("invalid output folder %q: %w", conf.OutputDir, err)
	}

	if len(conf.Images) == 0 {
		return fmt.Errorf("no images configured")
	}

	c.shadowColor = shadow.Color{A: 1} // opaque black
	if conf.Color != "" {
		if c.shadowColor, err = parseHexToColor(conf.Color); err != nil {
			return err
		}
	}

	c.conf = conf
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	start := time.Now()

	if err := os.MkdirAll(c.conf.OutputDir, 0o755); err != nil {
		return fmt.Errorf("unable to create output folder %q: %w", c.conf.OutputDir, err)
	}

	var generatedCount, skippedCount atomic.Uint64
	for source, name := range c.conf.Images {
		worker(func(source, name string) func() {
			return func() {
				logger := slog.Default().With("file", source)

				name = sanitizeName(name)
				if name == "" {
					skippedCount.Add(1)
					logger.Warn("blank output name, skipping")
					return
				}

				pix, width, height, err := decodeSource(source)
				if err != nil {
					skippedCount.Add(1)
					logger.Warn("could not decode image", "error", err)
					return
				}

				out, outWidth, outHeight := shadow.Generate(pix, width, height, c.shadowColor, c.radius)

				destPath := filepath.Join(c.conf.OutputDir, name)
				if err = savePNG(out, outWidth, outHeight, destPath); err != nil {
					skippedCount.Add(1)
					logger.Error("could not save shadow", "dest", destPath, "error", err)
					return
				}

				generatedCount.Add(1)
				logger.Info("generated shadow", "dest", destPath, "width", outWidth, "height", outHeight)
			}
		}(source, name))
	}

	wait(true)

	generated := generatedCount.Load()
	skipped := skippedCount.Load()
	slog.Info("stats", "generated", generated, "configured", generated+skipped,
		"elapsed", time.Since(start).Seconds())

	if skipped > 0 {
		return fmt.Errorf("error processing %d images", skipped)
	}
	return nil
}

// sanitizeName turns a configured output name into a file name relative to
// the output folder: surrounding whitespace and leading slashes are dropped
// and a .png extension is appended unless already present.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return ""
	}

	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	return name
}
