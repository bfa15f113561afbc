package main

import (
	"os"

	"github.com/i230016arsaltemuri/lintgate/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
