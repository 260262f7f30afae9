// Command timebench measures per-call clock-read costs.
//
// Usage:
//
//	go run ./cmd/timebench -n 10000000
package main

import (
	"os"

	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
