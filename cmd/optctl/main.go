package main

import (
	"os"

	"github.com/optctl/optctl/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	err := root.Execute()
	os.Exit(cli.ExitCode(err))
}
