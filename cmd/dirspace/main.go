// Command dirspace reports on-disk space usage as a hierarchical size
// tree.
package main

import (
	"fmt"
	"os"

	"github.com/nodestack/dirspace/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
