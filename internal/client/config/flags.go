package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the user-account API
//	-t int      request timeout in seconds
//	-p string   page to open on start (e.g. login.html)
//	-s string   session storage DSN (":memory:" or a file path)
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first, so -c and any other
// flags are left alone.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-p", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the user-account API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StartPage, "p", cfg.StartPage, "page to open on start")
	fs.StringVar(&cfg.SessionDSN, "s", cfg.SessionDSN, "session storage DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t overrides the timeout; its default is rounded to
	// whole seconds and would drop a sub-second value from JSON.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
