package main

import (
	"os"

	"github.com/schoolboyqueue/ccnotify/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
