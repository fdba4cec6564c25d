package config

import (
	"flag"
	"os"
	"time"

	"github.com/reviewdeck/adminctl/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the auth service
//	-u string   base URL of the users service
//	-m string   base URL of the master-data service
//	-t int      request timeout in seconds
//	-l string   log level (debug, info, warn, error)
//	-s string   path of the persisted session file
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-m", "-t", "-l", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthServiceURL, "a", cfg.AuthServiceURL, "auth service base URL")
	fs.StringVar(&cfg.UserServiceURL, "u", cfg.UserServiceURL, "users service base URL")
	fs.StringVar(&cfg.MasterDataServiceURL, "m", cfg.MasterDataServiceURL, "master-data service base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
