// Command apiserver runs the HTTP trigger server only.  Equivalent to
// "sentinel serve"; packaged separately for container images that never
// need the rest of the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/turtacn/SLA-Sentinel/internal/interfaces/cli"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	root := cli.NewRootCommand()
	root.SetArgs(append([]string{"serve"}, os.Args[1:]...))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

//Personal.AI order the ending
