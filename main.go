package main

import (
	"log/slog"
	"os"

	"shadowgen/generate"
	"shadowgen/parallel"
	"shadowgen/shadow"

	"github.com/alecthomas/kong"
)

func main() {
	var cmd generate.CLICmd
	kong.Parse(&cmd,
		kong.Name("shadowgen"),
		kong.Description("Generates padded drop-shadow PNGs from the alpha channel of source images."),
	)

	shadow.SetWorkers(cmd.Workers)
	pool := parallel.Start(cmd.Workers)

	if err := cmd.Run(pool.Do, pool.Wait); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
