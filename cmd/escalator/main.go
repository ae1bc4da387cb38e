// Command escalator executes one escalation batch and exits.  Equivalent to
// "sentinel run"; intended as the entrypoint for cron jobs and Kubernetes
// CronJob pods.
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
	root.SetArgs(append([]string{"run"}, os.Args[1:]...))
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

//Personal.AI order the ending
