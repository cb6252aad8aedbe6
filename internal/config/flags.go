package config

import (
	"flag"
	"os"
	"time"

	"github.com/janovian/stillpoint/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local state database (default from Config)
//	-l int      simulated backend latency in milliseconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to local state database")
	simulatedLatency := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated backend latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SimulatedLatency = time.Duration(*simulatedLatency) * time.Millisecond
}
