package main

import (
	"os"

	"github.com/btracey/newton/cmd/newton/cmd"
)

func main() {
	cmd.ConfigureLogging(os.Stderr)
	if err := cmd.Execute(cmd.RootCmd()); err != nil {
		os.Exit(1)
	}
}
