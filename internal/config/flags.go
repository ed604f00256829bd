package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/scanbatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags. Only
// the flags handled here are passed to the flag set, see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-e", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite|file)")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.ShareTarget, "t", cfg.ShareTarget, "share target (local|s3|http)")
	resumeDelay := fs.Int("r", int(cfg.ResumeDelay.Milliseconds()), "pause after an accepted scan (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ResumeDelay = time.Duration(*resumeDelay) * time.Millisecond
}
