package main

import (
	"os"

	"github.com/mobilitydb/meos-go/cmd/meosctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.PrintError(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
