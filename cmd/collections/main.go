// Command collections runs line oriented demos of the containers in this module.
// Each subcommand reads commands from stdin one line at a time and writes results to stdout.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
