// Command cookiefmt reads Set-Cookie header values from stdin, one per line,
// and prints each in canonical attribute order or as YAML.
//
// Usage:
//
//	cookiefmt [-output header|yaml] [-escape] [-defaults] [-permanent | -removal] < cookies.txt
//
// Settings can also come from the environment (or a .env file):
// COOKIEFMT_OUTPUT, COOKIEFMT_ESCAPE, COOKIEFMT_DEFAULTS, LOG_LEVEL and
// LOG_FORMAT. With -defaults, attributes a line leaves unset are filled from
// the COOKIE_* variables (COOKIE_PATH, COOKIE_SAME_SITE and so on).
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/setcookie/pkg/config"
)

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cookiefmt: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
