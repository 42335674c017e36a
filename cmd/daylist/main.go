package main

import (
	"context"
	"fmt"
	"os"

	"github.com/idilsaglam/daylist/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	code := cli.Run(context.Background(), os.Args[1:])
	if code != cli.ExitOK {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
