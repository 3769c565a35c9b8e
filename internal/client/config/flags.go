package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdir/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the directory service (default from Config)
//	-k string   identification key sent with every request
//	-n int      per_page value of the bulk fetch
//	-p int      records per page in the local view
//	-t int      request timeout in seconds
//	-d          enable debug logging
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-n", "-p", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the directory service")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key sent with every request")
	fs.IntVar(&cfg.PerPage, "n", cfg.PerPage, "per_page value of the bulk fetch")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "records per page in the local view")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
