// Command timelang parses, validates and formats human-readable time
// expressions.
package main

import (
	"context"
	"os"

	"github.com/leapstack-labs/timelang/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
