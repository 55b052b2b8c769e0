package config

import (
	"flag"
	"os"
	"time"

	"github.com/daiki-beppu/ui-gohan/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local SQLite database file (default from Config)
//	-r string   base URL of the remote sync endpoint (default from Config)
//	-k string   bearer token for the remote endpoint (default from Config)
//	-t int      remote request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.RemoteURL, "r", cfg.RemoteURL, "base URL of the remote sync endpoint")
	fs.StringVar(&cfg.RemoteAuthToken, "k", cfg.RemoteAuthToken, "bearer token for the remote endpoint")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
