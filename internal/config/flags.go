package config

import (
	"flag"
	"os"

	"salonbook/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN of the remote store
//	-s string   path of the local session database
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "remote store DSN")
	fs.StringVar(&cfg.SessionDBPath, "s", cfg.SessionDBPath, "local session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
